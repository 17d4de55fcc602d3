package indexes

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/freelancehub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zaptest"
)

func TestKeySig(t *testing.T) {
	sig := keySig(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	assert.Equal(t, "position:1, _id:1", sig)
}

func TestSameBoolPtr(t *testing.T) {
	yes, no := true, false
	assert.True(t, sameBoolPtr(nil, nil))
	assert.True(t, sameBoolPtr(nil, &no))
	assert.True(t, sameBoolPtr(&yes, &yes))
	assert.False(t, sameBoolPtr(&yes, nil))
}

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, isDuplicateKeyErr(nil))
	assert.True(t, isDuplicateKeyErr(errors.New("E11000 duplicate key error collection")))
	assert.False(t, isDuplicateKeyErr(errors.New("connection refused")))
}

func TestMemberIndexes(t *testing.T) {
	models := MemberIndexes()
	require.Len(t, models, 2)
	assert.Equal(t, MemberIDIndex, *models[0].Options.Name)
	assert.True(t, *models[0].Options.Unique)
	assert.Equal(t, MemberPositionIndex, *models[1].Options.Name)
}

func TestEnsureMembers_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	coll := db.Collection("members")
	logger := zaptest.NewLogger(t)

	require.NoError(t, EnsureMembers(ctx, coll, logger))
	require.NoError(t, EnsureMembers(ctx, coll, logger))

	got := listIndexes(ctx, coll, logger)
	assert.Equal(t, MemberIDIndex, got["id:1"].Name)
	assert.Equal(t, MemberPositionIndex, got["position:1, _id:1"].Name)
}

func TestEnsureMembers_RenamesMisnamedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	coll := db.Collection("members")

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("legacy_id"),
	})
	require.NoError(t, err)

	require.NoError(t, EnsureMembers(ctx, coll, zaptest.NewLogger(t)))
	got := listIndexes(ctx, coll, zaptest.NewLogger(t))
	assert.Equal(t, MemberIDIndex, got["id:1"].Name)
}

func TestEnsureMembers_UniqueIndexEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	coll := db.Collection("members")
	require.NoError(t, EnsureMembers(ctx, coll, nil))

	_, err := coll.InsertOne(ctx, bson.M{"id": "a", "name": "One"})
	require.NoError(t, err)
	_, err = coll.InsertOne(ctx, bson.M{"id": "a", "name": "Two"})
	assert.True(t, mongo.IsDuplicateKeyError(err), "expected duplicate key error, got %v", err)
}
