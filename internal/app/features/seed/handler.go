// internal/app/features/seed/handler.go
package seed

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	officerstore "github.com/dalemusser/clubhub/internal/app/store/officers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler replaces the officer roster with the built-in one.
// Secret is the configured seed secret; empty disables seeding.
type Handler struct {
	Client *mongo.Client
	Store  *officerstore.Store
	Secret string
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, secret string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Client: db.Client(),
		Store:  officerstore.New(db),
		Secret: secret,
		Log:    logger,
		ErrLog: errLog,
	}
}
