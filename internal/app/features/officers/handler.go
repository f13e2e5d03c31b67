// internal/app/features/officers/handler.go
package officers

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	officerstore "github.com/dalemusser/clubhub/internal/app/store/officers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the leadership roster: public reads plus the admin
// console's create, update and delete.
type Handler struct {
	DB     *mongo.Database
	Store  *officerstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to db.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  officerstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
