package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// PlansCollection is the document-store collection holding the remote
// plan catalog.
const PlansCollection = "paymentPlans"

type mongoSource struct {
	coll *mongo.Collection
}

// NewMongoSource returns a Source reading plans from the paymentPlans
// collection, sorted by display order.
func NewMongoSource(db *mongo.Database) Source {
	return &mongoSource{coll: db.Collection(PlansCollection)}
}

func (s *mongoSource) Load(ctx context.Context) ([]Plan, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var plans []Plan
	if err := cur.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
