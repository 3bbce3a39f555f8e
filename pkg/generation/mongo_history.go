package generation

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// HistoryCollection is the document-store collection holding generation
// records.
const HistoryCollection = "generations"

type mongoHistoryStore struct {
	coll *mongo.Collection
}

// NewMongoHistoryStore returns a HistoryStore backed by the generations
// collection.
func NewMongoHistoryStore(db *mongo.Database) HistoryStore {
	return &mongoHistoryStore{coll: db.Collection(HistoryCollection)}
}

func (s *mongoHistoryStore) Save(ctx context.Context, rec Record) error {
	_, err := s.coll.InsertOne(ctx, rec)
	return err
}

func (s *mongoHistoryStore) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	cursor, err := s.coll.Find(ctx,
		bson.D{{Key: "userId", Value: userID}},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []Record{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
