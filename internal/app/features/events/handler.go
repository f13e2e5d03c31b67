// internal/app/features/events/handler.go
package events

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the event calendar.
type Handler struct {
	DB     *mongo.Database
	Store  *eventstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  eventstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
