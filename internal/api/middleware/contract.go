package middleware

import "context"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimiter решает, пропускать ли запрос с данным ключом
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
