package cmd

import (
	"context"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
)

// openUsage opens the analytics database once for the lifetime of a command.
// A nil result disables recording: an unusable usage log should never block
// documentation work.
func openUsage(settings common.Settings) *analytics.Logger {
	if settings.AnalyticsDB == "" {
		return nil
	}
	usage, err := analytics.Open(settings.AnalyticsDB)
	if err != nil {
		logger.Warnf("Could not open analytics database: %v", err)
		return nil
	}
	return usage
}

func closeUsage(usage *analytics.Logger) {
	if usage != nil {
		_ = usage.Close()
	}
}

// recordUsage logs one operation, warning instead of failing: a missing
// usage record should never lose a finished document.
func recordUsage(ctx context.Context, usage *analytics.Logger, op analytics.Operation) {
	if usage == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := usage.LogOperation(ctx, op); err != nil {
		logger.Warnf("Could not record analytics: %v", err)
	}
}
