// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/clubhub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the four record collections if missing and attaches a
// JSON-Schema validator to each. Servers without collMod validator support
// (some DocumentDB versions) are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("officers", officersSchema())
	ensure("events", eventsSchema())
	ensure("news", newsSchema())
	ensure("applications", applicationsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
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
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
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
	zap.L().Info("validator ensured", zap.String("collection", name))
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

// nonBlank matches a string with at least one non-space character.
var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func enumOf(values []string) bson.A {
	a := make(bson.A, 0, len(values))
	for _, v := range values {
		a = append(a, v)
	}
	return a
}

func officersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "role", "email", "is_active", "order", "created_at"},
			"properties": bson.M{
				"name":         nonBlank,
				"role":         nonBlank,
				"email":        nonBlank,
				"joined_year":  bson.M{"bsonType": "string"},
				"achievements": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"is_active":    bson.M{"bsonType": "bool"},
				"order":        bson.M{"bsonType": bson.A{"int", "long"}},
				"created_at":   bson.M{"bsonType": "date"},
				"updated_at":   bson.M{"bsonType": "date"},
			},
		},
	}
}

func eventsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "date", "type", "status", "created_at"},
			"properties": bson.M{
				"title":             nonBlank,
				"date":              bson.M{"bsonType": "date"},
				"type":              bson.M{"enum": enumOf(models.EventTypes)},
				"status":            bson.M{"enum": enumOf(models.EventStatuses)},
				"max_attendees":     bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"current_attendees": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"highlights":        bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"created_at":        bson.M{"bsonType": "date"},
			},
		},
	}
}

func newsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "category", "category_ci", "is_published", "sort_at", "created_at"},
			"properties": bson.M{
				"title":        nonBlank,
				"category":     nonBlank,
				"category_ci":  nonBlank,
				"tags":         bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"is_published": bson.M{"bsonType": "bool"},
				"featured":     bson.M{"bsonType": "bool"},
				"published_at": bson.M{"bsonType": "date"},
				"sort_at":      bson.M{"bsonType": "date"},
				"created_at":   bson.M{"bsonType": "date"},
			},
		},
	}
}

func applicationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"first_name", "last_name", "email", "status", "created_at"},
			"properties": bson.M{
				"first_name":    nonBlank,
				"last_name":     nonBlank,
				"email":         nonBlank,
				"date_of_birth": bson.M{"bsonType": "date"},
				"interests":     bson.M{"bsonType": "array", "minItems": 1, "items": bson.M{"bsonType": "string"}},
				"status":        bson.M{"enum": enumOf(models.ApplicationStatuses)},
				"reviewed_at":   bson.M{"bsonType": "date"},
				"created_at":    bson.M{"bsonType": "date"},
			},
		},
	}
}
