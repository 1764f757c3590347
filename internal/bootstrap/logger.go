package bootstrap

import (
	"go-diamond-payroll/internal/config"

	"go.uber.org/zap"
)

// NewLogger picks the JSON production encoder when APP_ENV=production and the
// console encoder otherwise.
func NewLogger(cfg config.AppConfig) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
