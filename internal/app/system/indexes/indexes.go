// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Index names owned by this package.
const (
	MemberIDIndex       = "uniq_member_id"
	MemberPositionIndex = "idx_member_position"
)

/*
EnsureMembers is called from EnsureSchema when members live in MongoDB.
It is idempotent: indexes that already exist with the same keys and
options are reused, renamed ones are aligned, and ones whose options
changed are dropped and recreated.
*/
func EnsureMembers(ctx context.Context, coll *mongo.Collection, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ensureIndexSet(ctx, coll, MemberIndexes(), logger)
}

// MemberIndexes is the desired index set for the members collection: a
// unique member id and the (position, _id) order the source reads in.
func MemberIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(MemberIDIndex),
		},
		{
			Keys:    bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName(MemberPositionIndex),
		},
	}
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func listIndexes(ctx context.Context, coll *mongo.Collection, logger *zap.Logger) map[string]existingIndex {
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return existing
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			logger.Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		unique := desiredUnique != nil && *desiredUnique
		desiredSig := keySig(m.Keys.(bson.D))
		fields := []zap.Field{
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", unique),
		}

		start := time.Now()
		existing := listIndexes(ctx, coll, logger)

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName) {
				logger.Debug("reusing existing index", append(fields, zap.Duration("took", time.Since(start)))...)
				continue
			}
			// Name or options differ: drop and recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				logger.Warn("drop existing index failed", append(fields, zap.String("existing", ex.Name), zap.Error(err))...)
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			switch {
			case isDuplicateKeyErr(err) && unique:
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
			case isOptionsConflictErr(err):
				errs = append(errs, fmt.Sprintf("%s(%s): conflicting index options: %v", coll.Name(), desiredName, err))
			default:
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			}
			logger.Warn("index ensure failed", append(fields, zap.Duration("took", time.Since(start)), zap.Error(err))...)
			continue
		}
		logger.Info("index ensured", append(fields, zap.Duration("took", time.Since(start)))...)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
