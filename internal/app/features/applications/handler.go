// internal/app/features/applications/handler.go
package applications

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves membership applications: the public submit form and the
// officers' review queue.
type Handler struct {
	DB     *mongo.Database
	Store  *applicationstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  applicationstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
