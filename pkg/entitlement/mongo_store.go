package entitlement

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SubscriptionsCollection is the document-store collection holding one
// record per user.
const SubscriptionsCollection = "subscriptions"

type mongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the subscriptions collection.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{coll: db.Collection(SubscriptionsCollection)}
}

func (s *mongoStore) Get(ctx context.Context, userID string) (*Subscription, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	var sub Subscription
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *mongoStore) Merge(ctx context.Context, userID string, patch Patch) error {
	if userID == "" {
		return ErrMissingUserID
	}

	set := bson.D{}
	if patch.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *patch.Status})
	}
	if patch.PlanID != nil {
		set = append(set, bson.E{Key: "planId", Value: *patch.PlanID})
	}
	if patch.UpdatedAt != nil {
		set = append(set, bson.E{Key: "updatedAt", Value: *patch.UpdatedAt})
	}
	if patch.ExpiresAt != nil {
		set = append(set, bson.E{Key: "expiresAt", Value: *patch.ExpiresAt})
	}
	if len(set) == 0 {
		return nil
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID}},
		bson.D{{Key: "$set", Value: set}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}
