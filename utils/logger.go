package utils

import (
	"go.uber.org/zap"
)

var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// InitLogger installs the process-wide structured logger.
func InitLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Log = logger.Sugar()
	return nil
}
