/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vcissuer/issuer/pkg/credential"
)

// ProcedureStore keeps credential procedures in process memory.
type ProcedureStore struct {
	mu         sync.RWMutex
	procedures map[string]credential.Procedure
}

func NewProcedureStore() *ProcedureStore {
	return &ProcedureStore{
		procedures: map[string]credential.Procedure{},
	}
}

func (s *ProcedureStore) Create(_ context.Context, p *credential.Procedure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.procedures[p.ProcedureID]; ok {
		return fmt.Errorf("%w: procedure %s", credential.ErrDuplicate, p.ProcedureID)
	}

	for _, existing := range s.procedures {
		if existing.CredentialID == p.CredentialID {
			return fmt.Errorf("%w: credential %s", credential.ErrDuplicate, p.CredentialID)
		}
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.procedures[p.ProcedureID] = *p

	return nil
}

func (s *ProcedureStore) FindByProcedureID(_ context.Context, procedureID string) (*credential.Procedure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.procedures[procedureID]
	if !ok {
		return nil, credential.ErrDataNotFound
	}

	return &p, nil
}

func (s *ProcedureStore) FindByCredentialID(_ context.Context, credentialID string) (*credential.Procedure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.procedures {
		if p.CredentialID == credentialID {
			p := p

			return &p, nil
		}
	}

	return nil, credential.ErrDataNotFound
}

func (s *ProcedureStore) ListByOrganization(_ context.Context, organizationID string) ([]*credential.Procedure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*credential.Procedure

	for _, p := range s.procedures {
		if p.OrganizationIdentifier == organizationID {
			p := p
			result = append(result, &p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (s *ProcedureStore) UpdateDecoded(_ context.Context, procedureID, decoded string) error {
	return s.update(procedureID, func(p *credential.Procedure) error {
		p.CredentialDecoded = decoded

		return nil
	})
}

func (s *ProcedureStore) UpdateEncoded(_ context.Context, procedureID, encoded string) error {
	return s.update(procedureID, func(p *credential.Procedure) error {
		p.CredentialEncoded = encoded

		return nil
	})
}

func (s *ProcedureStore) UpdateStatus(_ context.Context, procedureID string, expected, next credential.Status) error {
	if err := expected.CheckTransition(next); err != nil {
		return err
	}

	return s.update(procedureID, func(p *credential.Procedure) error {
		if p.Status != expected {
			return credential.ErrConcurrentUpdate
		}

		p.Status = next

		return nil
	})
}

func (s *ProcedureStore) update(procedureID string, mutate func(p *credential.Procedure) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.procedures[procedureID]
	if !ok {
		return credential.ErrDataNotFound
	}

	if err := mutate(&p); err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	s.procedures[procedureID] = p

	return nil
}
