// internal/app/features/news/handler.go
package news

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	newsstore "github.com/dalemusser/clubhub/internal/app/store/news"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves news articles. Article bodies are sanitized on every
// write, so reads return stored HTML as is.
type Handler struct {
	DB     *mongo.Database
	Store  *newsstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  newsstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
