/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deferredstore

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
	collectionName = "deferred_credential_metadata"
)

type mongoDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ProcedureID     string             `bson:"procedureId"`
	TransactionCode string             `bson:"transactionCode,omitempty"`
	AuthServerNonce string             `bson:"authServerNonce,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty"`
	VC              string             `bson:"vc,omitempty"`
	VCFormat        string             `bson:"vcFormat,omitempty"`
	OperationMode   string             `bson:"operationMode"`
	ResponseURI     string             `bson:"responseUri,omitempty"`
	State           string             `bson:"state"`
	Renewed         bool               `bson:"renewed"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// Store persists deferred credential metadata in mongo.
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
	sparseUnique := options.Index().SetUnique(true).SetSparse(true)

	return s.mongoClient.EnsureIndexes(ctx, collectionName,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "procedureId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "transactionCode", Value: 1}},
			Options: sparseUnique,
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "authServerNonce", Value: 1}},
			Options: sparseUnique,
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: sparseUnique,
		},
	)
}

func (s *Store) Create(ctx context.Context, md *credential.DeferredMetadata) error {
	doc := mapMetadataToDocument(md)
	doc.UpdatedAt = time.Now().UTC()

	result, err := s.collection().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: deferred metadata of procedure %s", credential.ErrDuplicate, md.ProcedureID)
		}

		return fmt.Errorf("insert deferred metadata: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		md.ID = id.Hex()
	}

	md.UpdatedAt = doc.UpdatedAt

	return nil
}

func (s *Store) FindByProcedureID(ctx context.Context, procedureID string) (*credential.DeferredMetadata, error) {
	return s.findOne(ctx, bson.M{"procedureId": procedureID})
}

func (s *Store) FindByTransactionCode(ctx context.Context, code string) (*credential.DeferredMetadata, error) {
	return s.findOne(ctx, bson.M{"transactionCode": code})
}

func (s *Store) FindByAuthServerNonce(ctx context.Context, nonce string) (*credential.DeferredMetadata, error) {
	return s.findOne(ctx, bson.M{"authServerNonce": nonce})
}

func (s *Store) FindByTransactionID(ctx context.Context, transactionID string) (*credential.DeferredMetadata, error) {
	return s.findOne(ctx, bson.M{"transactionId": transactionID})
}

// Update replaces the row of md.ProcedureID if its persisted state is still expected.
func (s *Store) Update(ctx context.Context, md *credential.DeferredMetadata, expected credential.OfferState) error {
	doc := mapMetadataToDocument(md)
	doc.UpdatedAt = time.Now().UTC()

	set, unset := splitEmpty(doc)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := s.collection().UpdateOne(ctx,
		bson.M{"procedureId": md.ProcedureID, "state": string(expected)},
		update,
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", credential.ErrDuplicate, err)
		}

		return fmt.Errorf("update deferred metadata: %w", err)
	}

	if res.MatchedCount == 0 {
		if _, err = s.FindByProcedureID(ctx, md.ProcedureID); err != nil {
			return err
		}

		return fmt.Errorf("%w: procedure %s is no longer in state %s",
			credential.ErrConcurrentUpdate, md.ProcedureID, expected)
	}

	md.UpdatedAt = doc.UpdatedAt

	return nil
}

func (s *Store) Delete(ctx context.Context, procedureID string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"procedureId": procedureID}); err != nil {
		return fmt.Errorf("delete deferred metadata: %w", err)
	}

	return nil
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*credential.DeferredMetadata, error) {
	var doc mongoDocument

	if err := s.collection().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find deferred metadata: %w", err)
	}

	return mapDocumentToMetadata(&doc), nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Collection(collectionName)
}

// splitEmpty builds the $set document and removes cleared optional fields so
// the sparse unique indexes never see empty strings.
func splitEmpty(doc *mongoDocument) (bson.M, bson.M) {
	set := bson.M{
		"operationMode": doc.OperationMode,
		"state":         doc.State,
		"renewed":       doc.Renewed,
		"updatedAt":     doc.UpdatedAt,
	}
	unset := bson.M{}

	optional := map[string]string{
		"transactionCode": doc.TransactionCode,
		"authServerNonce": doc.AuthServerNonce,
		"transactionId":   doc.TransactionID,
		"vc":              doc.VC,
		"vcFormat":        doc.VCFormat,
		"responseUri":     doc.ResponseURI,
	}

	for k, v := range optional {
		if v == "" {
			unset[k] = ""
		} else {
			set[k] = v
		}
	}

	return set, unset
}

func mapMetadataToDocument(md *credential.DeferredMetadata) *mongoDocument {
	return &mongoDocument{
		ProcedureID:     md.ProcedureID,
		TransactionCode: md.TransactionCode,
		AuthServerNonce: md.AuthServerNonce,
		TransactionID:   md.TransactionID,
		VC:              md.VC,
		VCFormat:        string(md.VCFormat),
		OperationMode:   string(md.OperationMode),
		ResponseURI:     md.ResponseURI,
		State:           string(md.State),
		Renewed:         md.Renewed,
	}
}

func mapDocumentToMetadata(doc *mongoDocument) *credential.DeferredMetadata {
	return &credential.DeferredMetadata{
		ID:              doc.ID.Hex(),
		ProcedureID:     doc.ProcedureID,
		TransactionCode: doc.TransactionCode,
		AuthServerNonce: doc.AuthServerNonce,
		TransactionID:   doc.TransactionID,
		VC:              doc.VC,
		VCFormat:        credential.Format(doc.VCFormat),
		OperationMode:   credential.OperationMode(doc.OperationMode),
		ResponseURI:     doc.ResponseURI,
		State:           credential.OfferState(doc.State),
		Renewed:         doc.Renewed,
		UpdatedAt:       doc.UpdatedAt,
	}
}
