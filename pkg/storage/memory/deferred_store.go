/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vcissuer/issuer/pkg/credential"
)

// DeferredStore keeps deferred credential metadata in process memory.
type DeferredStore struct {
	mu   sync.RWMutex
	rows map[string]credential.DeferredMetadata
}

func NewDeferredStore() *DeferredStore {
	return &DeferredStore{
		rows: map[string]credential.DeferredMetadata{},
	}
}

func (s *DeferredStore) Create(_ context.Context, md *credential.DeferredMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[md.ProcedureID]; ok {
		return fmt.Errorf("%w: deferred metadata of procedure %s", credential.ErrDuplicate, md.ProcedureID)
	}

	if err := s.checkUnique(md); err != nil {
		return err
	}

	md.ID = uuid.NewString()
	md.UpdatedAt = time.Now().UTC()

	s.rows[md.ProcedureID] = *md

	return nil
}

func (s *DeferredStore) FindByProcedureID(_ context.Context, procedureID string) (*credential.DeferredMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	md, ok := s.rows[procedureID]
	if !ok {
		return nil, credential.ErrDataNotFound
	}

	return &md, nil
}

func (s *DeferredStore) FindByTransactionCode(_ context.Context, code string) (*credential.DeferredMetadata, error) {
	return s.findBy(func(md *credential.DeferredMetadata) bool { return md.TransactionCode == code })
}

func (s *DeferredStore) FindByAuthServerNonce(_ context.Context, nonce string) (*credential.DeferredMetadata, error) {
	return s.findBy(func(md *credential.DeferredMetadata) bool { return md.AuthServerNonce == nonce })
}

func (s *DeferredStore) FindByTransactionID(_ context.Context, id string) (*credential.DeferredMetadata, error) {
	return s.findBy(func(md *credential.DeferredMetadata) bool { return md.TransactionID == id })
}

func (s *DeferredStore) Update(_ context.Context, md *credential.DeferredMetadata, expected credential.OfferState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rows[md.ProcedureID]
	if !ok {
		return credential.ErrDataNotFound
	}

	if current.State != expected {
		return fmt.Errorf("%w: procedure %s is no longer in state %s",
			credential.ErrConcurrentUpdate, md.ProcedureID, expected)
	}

	if err := s.checkUnique(md); err != nil {
		return err
	}

	md.ID = current.ID
	md.UpdatedAt = time.Now().UTC()

	s.rows[md.ProcedureID] = *md

	return nil
}

func (s *DeferredStore) Delete(_ context.Context, procedureID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, procedureID)

	return nil
}

func (s *DeferredStore) findBy(match func(md *credential.DeferredMetadata) bool) (*credential.DeferredMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, md := range s.rows {
		md := md

		if match(&md) {
			return &md, nil
		}
	}

	return nil, credential.ErrDataNotFound
}

// checkUnique mirrors the sparse unique indexes of the mongo store.
func (s *DeferredStore) checkUnique(md *credential.DeferredMetadata) error {
	for procedureID, other := range s.rows {
		if procedureID == md.ProcedureID {
			continue
		}

		if clash(md.TransactionCode, other.TransactionCode) ||
			clash(md.AuthServerNonce, other.AuthServerNonce) ||
			clash(md.TransactionID, other.TransactionID) {
			return fmt.Errorf("%w: deferred metadata of procedure %s", credential.ErrDuplicate, md.ProcedureID)
		}
	}

	return nil
}

func clash(a, b string) bool {
	return a != "" && a == b
}
