package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized key for the per-invocation run identifier.
	FieldRunID = "run_id"
	// FieldEpisodeID is the standardized key for transcript episode numbers.
	FieldEpisodeID = "episode_id"
	// FieldSource is the standardized key for transcript file paths.
	FieldSource = "source"
	// FieldEventType classifies warnings for filtering.
	FieldEventType = "event_type"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	episodeIDKey contextKey = "episode_id"
)

// WithRunID annotates context with the run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithEpisodeID annotates context with the episode currently being processed.
func WithEpisodeID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, episodeIDKey, id)
}

// EpisodeIDFromContext extracts the episode number if present.
func EpisodeIDFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(episodeIDKey).(int)
	return v, ok
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if id, ok := EpisodeIDFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldEpisodeID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
