package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/zkybank/internal/application"
)

// defaultMaxAttempts bounds the optimistic-conflict retry loop when no
// configuration is supplied.
const defaultMaxAttempts = 3

// runWithRetries re-runs attempt until it succeeds, fails with a
// non-concurrency error, or the bound is spent. Each attempt is a complete
// load-validate-mutate-persist cycle with no caller-visible partial effects.
// There is no backoff between attempts.
func runWithRetries(
	ctx context.Context,
	logger *slog.Logger,
	operation string,
	maxAttempts int,
	attempt func(ctx context.Context) error,
) error {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}

	for i := 1; i <= maxAttempts; i++ {
		err := attempt(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, application.ErrConcurrencyConflict) {
			return err
		}

		logger.Warn("concurrency conflict, retrying",
			"operation", operation,
			"attempt", i,
			"max_attempts", maxAttempts,
		)
	}

	return application.NewConcurrencyExhaustedError(operation, maxAttempts)
}
