package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoURIEnv names the variable that enables MongoDB-backed tests.
const MongoURIEnv = "FREELANCEHUB_TEST_MONGO_URI"

// SetupTestDB connects to the server at $FREELANCEHUB_TEST_MONGO_URI and
// returns a throwaway database that is dropped when the test ends. The test
// is skipped when the variable is unset.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv(MongoURIEnv)
	if uri == "" {
		t.Skip(MongoURIEnv + " not set")
	}
	ctx, cancel := TestContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	db := client.Database("freelancehub_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}
