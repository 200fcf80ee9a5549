package main

import "go.uber.org/zap"

var _logger = zap.NewNop()

// initLogger installs the run logger. Quiet runs keep the nop logger so the
// console carries nothing but echoed result lines.
func initLogger(verbose bool) {
	if !verbose {
		_logger = zap.NewNop()
		return
	}
	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	_logger = lg
}

func syncLogger() {
	_ = _logger.Sync()
}

func logInfo(msg string, fields ...zap.Field) {
	_logger.Info(msg, fields...)
}

func logError(msg string, fields ...zap.Field) {
	_logger.Error(msg, fields...)
}
