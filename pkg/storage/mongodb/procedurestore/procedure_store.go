/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package procedurestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/storage/mongodb"
)

const (
	collectionName = "credential_procedures"
)

type mongoDocument struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	ProcedureID            string             `bson:"procedureId"`
	CredentialID           string             `bson:"credentialId"`
	CredentialType         string             `bson:"credentialType"`
	CredentialDecoded      string             `bson:"credentialDecoded"`
	CredentialEncoded      string             `bson:"credentialEncoded,omitempty"`
	Status                 string             `bson:"status"`
	OrganizationIdentifier string             `bson:"organizationIdentifier"`
	ValidUntil             time.Time          `bson:"validUntil"`
	CreatedAt              time.Time          `bson:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt"`
}

// Store persists credential procedures in mongo.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates the store and its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	return s.mongoClient.EnsureIndexes(ctx, collectionName,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "procedureId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "credentialId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "organizationIdentifier", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	)
}

func (s *Store) Create(ctx context.Context, p *credential.Procedure) error {
	now := time.Now().UTC()

	doc := mapProcedureToDocument(p)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := s.collection().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: procedure %s", credential.ErrDuplicate, p.ProcedureID)
		}

		return fmt.Errorf("insert procedure: %w", err)
	}

	p.CreatedAt = now
	p.UpdatedAt = now

	return nil
}

func (s *Store) FindByProcedureID(ctx context.Context, procedureID string) (*credential.Procedure, error) {
	return s.findOne(ctx, bson.M{"procedureId": procedureID})
}

func (s *Store) FindByCredentialID(ctx context.Context, credentialID string) (*credential.Procedure, error) {
	return s.findOne(ctx, bson.M{"credentialId": credentialID})
}

// ListByOrganization returns the procedures of an organization, newest first.
func (s *Store) ListByOrganization(ctx context.Context, organizationID string) ([]*credential.Procedure, error) {
	cursor, err := s.collection().Find(ctx,
		bson.M{"organizationIdentifier": organizationID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find procedures: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx)
	}()

	var result []*credential.Procedure

	for cursor.Next(ctx) {
		var doc mongoDocument

		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode procedure: %w", err)
		}

		p, mapErr := mapDocumentToProcedure(&doc)
		if mapErr != nil {
			return nil, mapErr
		}

		result = append(result, p)
	}

	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate procedures: %w", err)
	}

	return result, nil
}

// UpdateDecoded replaces the decoded credential JSON.
func (s *Store) UpdateDecoded(ctx context.Context, procedureID, decoded string) error {
	return s.updateOne(ctx, procedureID, nil, bson.M{"credentialDecoded": decoded})
}

// UpdateEncoded stores the signed credential.
func (s *Store) UpdateEncoded(ctx context.Context, procedureID, encoded string) error {
	return s.updateOne(ctx, procedureID, nil, bson.M{"credentialEncoded": encoded})
}

// UpdateStatus moves the procedure from expected to next. It fails with
// credential.ErrConcurrentUpdate if the stored status is no longer expected.
func (s *Store) UpdateStatus(ctx context.Context, procedureID string, expected, next credential.Status) error {
	if err := expected.CheckTransition(next); err != nil {
		return err
	}

	return s.updateOne(ctx, procedureID, bson.M{"status": string(expected)}, bson.M{"status": string(next)})
}

func (s *Store) updateOne(ctx context.Context, procedureID string, predicate, set bson.M) error {
	filter := bson.M{"procedureId": procedureID}
	for k, v := range predicate {
		filter[k] = v
	}

	set["updatedAt"] = time.Now().UTC()

	res, err := s.collection().UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update procedure: %w", err)
	}

	if res.MatchedCount == 0 {
		if _, findErr := s.FindByProcedureID(ctx, procedureID); findErr != nil {
			return findErr
		}

		return credential.ErrConcurrentUpdate
	}

	return nil
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*credential.Procedure, error) {
	var doc mongoDocument

	if err := s.collection().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find procedure: %w", err)
	}

	return mapDocumentToProcedure(&doc)
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Collection(collectionName)
}

func mapProcedureToDocument(p *credential.Procedure) *mongoDocument {
	return &mongoDocument{
		ProcedureID:            p.ProcedureID,
		CredentialID:           p.CredentialID,
		CredentialType:         p.Type.String(),
		CredentialDecoded:      p.CredentialDecoded,
		CredentialEncoded:      p.CredentialEncoded,
		Status:                 string(p.Status),
		OrganizationIdentifier: p.OrganizationIdentifier,
		ValidUntil:             p.ValidUntil.UTC(),
	}
}

func mapDocumentToProcedure(doc *mongoDocument) (*credential.Procedure, error) {
	typ, err := credential.ParseType(doc.CredentialType)
	if err != nil {
		return nil, err
	}

	status, err := credential.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	return &credential.Procedure{
		ProcedureID:            doc.ProcedureID,
		CredentialID:           doc.CredentialID,
		Type:                   typ,
		CredentialDecoded:      doc.CredentialDecoded,
		CredentialEncoded:      doc.CredentialEncoded,
		Status:                 status,
		OrganizationIdentifier: doc.OrganizationIdentifier,
		ValidUntil:             doc.ValidUntil,
		CreatedAt:              doc.CreatedAt,
		UpdatedAt:              doc.UpdatedAt,
	}, nil
}
