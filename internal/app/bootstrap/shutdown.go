// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the throttle sweepers and disconnects MongoDB.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.ApplyLimiter != nil {
		deps.ApplyLimiter.Stop()
	}
	if deps.SeedLimiter != nil {
		deps.SeedLimiter.Stop()
	}
	if deps.AdminLimiter != nil {
		deps.AdminLimiter.Stop()
	}
	if deps.ClubHubMongoClient != nil {
		logger.Info("disconnecting clubhub MongoDB client")
		if err := deps.ClubHubMongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			return err
		}
	}
	return nil
}
