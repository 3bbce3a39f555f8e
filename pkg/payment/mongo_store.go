package payment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SessionsCollection is the document-store collection holding payment
// sessions keyed by the provider payment ID.
const SessionsCollection = "paymentSessions"

type mongoSessionStore struct {
	coll *mongo.Collection
}

// NewMongoSessionStore returns a SessionStore backed by the
// paymentSessions collection.
func NewMongoSessionStore(db *mongo.Database) SessionStore {
	return &mongoSessionStore{coll: db.Collection(SessionsCollection)}
}

func (s *mongoSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	var session Session
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *mongoSessionStore) Create(ctx context.Context, session *Session) error {
	_, err := s.coll.InsertOne(ctx, session)
	return err
}

func (s *mongoSessionStore) UpsertStatus(ctx context.Context, id string, status SessionStatus, at time.Time) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updatedAt", Value: at},
		}}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}
