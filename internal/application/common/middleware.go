package common

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"
)

// LoggingMiddleware attaches logger to the request context and logs each
// request with its outcome and duration
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		name := RequestName(request)
		ctx = WithLogger(ctx, logger.With("request", name))

		start := time.Now()
		response, err := next(ctx, request)
		elapsed := time.Since(start)

		if err != nil {
			logger.Debug("request failed", "request", name, "duration", elapsed, "error", err)
		} else {
			logger.Debug("request handled", "request", name, "duration", elapsed)
		}
		return response, err
	}
}

// RequestName returns the bare type name of a request, e.g. "ConnectCommand"
func RequestName(request Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
