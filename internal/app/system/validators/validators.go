// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureMembers creates the members collection (if missing) and tries to
// attach its JSON-Schema validator. On servers that don't support
// collMod/validators (e.g. some DocumentDB versions), we log and skip.
func EnsureMembers(ctx context.Context, db *mongo.Database, coll string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := ensureCollection(ctx, db, coll, logger); err != nil {
		return errors.New(coll + ": " + err.Error())
	}
	if err := setValidator(ctx, db, coll, MembersSchema(), logger); err != nil {
		if isNoSuchCommand(err) || isNotImplemented(err) {
			logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
			return nil
		}
		return errors.New(coll + ": " + err.Error())
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		logger.Debug("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			logger.Debug("collection exists", zap.String("collection", name))
			return false, nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

// MembersSchema requires a non-blank id and name. Optional fields are
// type-checked when present; bio may be null.
func MembersSchema() bson.M {
	stringList := bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"id", "name"},
			"properties": bson.M{
				"id":         bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"name":       bson.M{"bsonType": "string", "minLength": 1},
				"photo":      bson.M{"bsonType": "string"},
				"expertise":  stringList,
				"tech_stack": stringList,
				"portfolio":  bson.M{"bsonType": "string"},
				"education":  bson.M{"bsonType": "string"},
				"email":      bson.M{"bsonType": "string"},
				"available":  bson.M{"bsonType": "bool"},
				"bio":        bson.M{"bsonType": bson.A{"string", "null"}},
				"position":   bson.M{"bsonType": bson.A{"int", "long", "double"}},
				"work_history": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"properties": bson.M{
							"project_name": bson.M{"bsonType": "string"},
							"company":      bson.M{"bsonType": "string"},
							"duration":     bson.M{"bsonType": "string"},
							"description":  bson.M{"bsonType": "string"},
							"link":         bson.M{"bsonType": "string"},
						},
					},
				},
			},
		},
	}
}
