// internal/app/system/txn/txn.go
//
// Package txn runs multi-document writes inside a MongoDB transaction when the
// deployment supports one, and falls back to running them directly on a
// standalone server.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Server error codes returned when transactions or sessions are unavailable.
const (
	codeIllegalOperation        = 20
	codeIllegalOperationLegacy  = 51
	codeOperationNotSupportedTx = 263
)

// Run executes fn inside a transaction. If the server rejects transactions
// (standalone mongod, old versions), fn is run again without one and the
// result of that run is returned. fn must therefore be safe to re-run after an
// aborted attempt.
func Run(ctx context.Context, client *mongo.Client, log *zap.Logger, name string, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if !IsNotSupported(err) {
			return err
		}
		return runDirect(ctx, log, name, err, fn)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		return runDirect(ctx, log, name, err, fn)
	}
	return err
}

func runDirect(ctx context.Context, log *zap.Logger, name string, cause error, fn func(ctx context.Context) error) error {
	log.Warn("transactions unavailable, running without one",
		zap.String("operation", name),
		zap.Error(cause))
	return fn(ctx)
}

// IsNotSupported reports whether err means the deployment cannot run
// transactions or sessions.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeIllegalOperation, codeIllegalOperationLegacy, codeOperationNotSupportedTx:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	has := func(a, b string) bool {
		return strings.Contains(msg, a) && strings.Contains(msg, b)
	}
	switch {
	case has("transaction", "replica set"),
		has("session", "not supported"),
		has("transaction", "session"),
		strings.Contains(msg, "illegal operation"):
		return true
	}
	return false
}
