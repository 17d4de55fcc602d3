// internal/app/store/members/mongosource.go
package memberstore

import (
	"context"

	"github.com/dalemusser/freelancehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads members from a MongoDB collection.
//
// Documents are ordered by their "position" field, then by _id, so the
// directory shows them in a stable, curated order.
type MongoSource struct {
	Coll *mongo.Collection
}

// NewMongoSource returns a source over db.collection(name).
func NewMongoSource(db *mongo.Database, collection string) MongoSource {
	return MongoSource{Coll: db.Collection(collection)}
}

func (s MongoSource) Name() string { return SourceMongo }

func (s MongoSource) Load(ctx context.Context) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
