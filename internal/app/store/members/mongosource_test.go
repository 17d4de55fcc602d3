package memberstore_test

import (
	"context"
	"testing"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/indexes"
	"github.com/dalemusser/freelancehub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMongoSource_LoadsInPositionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	coll := db.Collection("members")
	require.NoError(t, indexes.EnsureMembers(ctx, coll, nil))

	_, err := coll.InsertMany(ctx, []interface{}{
		bson.M{"id": "b", "name": "Beta", "position": 2, "expertise": bson.A{"Data"}},
		bson.M{"id": "a", "name": "Alpha", "position": 1, "expertise": bson.A{"Web", "Data"}, "bio": "Hi",
			"work_history": bson.A{bson.M{"project_name": "P", "company": "C", "duration": "2024", "description": "D", "link": "https://example.com"}}},
	})
	require.NoError(t, err)

	store, err := memberstore.Open(ctx, memberstore.NewMongoSource(db, "members"))
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	require.NotNil(t, all[0].Bio)
	assert.Nil(t, all[1].Bio)
	require.Len(t, all[0].WorkHistory, 1)
	assert.Equal(t, "P", all[0].WorkHistory[0].ProjectName)
}

func TestMongoSource_UniqueIndexRejectsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	coll := db.Collection("members")
	require.NoError(t, indexes.EnsureMembers(ctx, coll, nil))

	_, err := coll.InsertOne(ctx, bson.M{"id": "a", "name": "One"})
	require.NoError(t, err)
	_, err = coll.InsertOne(ctx, bson.M{"id": "a", "name": "Two"})
	assert.True(t, mongo.IsDuplicateKeyError(err), "expected duplicate key error, got %v", err)
}
