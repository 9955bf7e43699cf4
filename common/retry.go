package common

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/repodocs/repodoc/logger"
)

// RetryConfig controls the retry behaviour of HTTP clients talking to the
// documentation backends.
type RetryConfig struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// CheckRetry overrides retryablehttp.DefaultRetryPolicy when non-nil.
	CheckRetry retryablehttp.CheckRetry
}

// DefaultRetryConfig is tuned for chat-completion APIs: documenting a chunk
// is slow anyway, so a few retries with short backoff handle the occasional
// 429 or 5xx without stalling a batch run.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RetryMax:     3,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 5 * time.Second,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
	}
}

// NewRetryableClient builds the HTTP client the LLM backends use for their
// completion requests.
func NewRetryableClient(config RetryConfig) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()

	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = config.RetryWaitMin
	retryClient.RetryWaitMax = config.RetryWaitMax

	logger.Debugf("Created retryable client with max retries: %d, min wait: %s, max wait: %s",
		config.RetryMax, config.RetryWaitMin, config.RetryWaitMax)

	if config.CheckRetry != nil {
		retryClient.CheckRetry = config.CheckRetry
	}

	// Route retry logging through zap
	retryClient.Logger = &zapRetryLogger{}

	return retryClient
}

// zapRetryLogger adapts the package logger to retryablehttp's LeveledLogger
type zapRetryLogger struct{}

func (z *zapRetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Error(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Info(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Debug(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.Warn(append([]interface{}{msg}, keysAndValues...)...)
}
