package kv

import (
	"context"
	"encoding/json"

	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// SchemaVersion is the current payload envelope version.
const SchemaVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Store persists one typed value under a fixed key. Loads never fail
// towards the caller: missing, malformed, unsupported or invalid content
// degrades to the zero value. Saves wrap the payload in a versioned
// envelope; bare legacy payloads (version 0) are still accepted on load
// and migrate to the envelope on the next save.
type Store[T any] struct {
	backend  Backend
	key      string
	validate func(T) error
	logg     *logger.Logger
}

// NewStore builds a typed store over the backend. validate may be nil.
func NewStore[T any](backend Backend, key string, validate func(T) error, logg *logger.Logger) *Store[T] {
	return &Store[T]{backend: backend, key: key, validate: validate, logg: logg}
}

// Load reads and validates the stored value. The second return reports
// whether a usable value was found.
func (s *Store[T]) Load(ctx context.Context) (T, bool) {
	var zero T

	raw, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.warn(ctx, "read failed", err)
		return zero, false
	}
	if !ok || raw == "" {
		return zero, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version != 0 {
		if env.Version != SchemaVersion {
			s.warn(ctx, "unsupported payload version", nil)
			return zero, false
		}
		return s.decode(ctx, env.Data)
	}

	// Legacy payloads predate the envelope and carry the bare value.
	return s.decode(ctx, json.RawMessage(raw))
}

func (s *Store[T]) decode(ctx context.Context, raw json.RawMessage) (T, bool) {
	var zero T
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.warn(ctx, "malformed payload", err)
		return zero, false
	}
	if s.validate != nil {
		if err := s.validate(value); err != nil {
			s.warn(ctx, "rejected payload", err)
			return zero, false
		}
	}
	return value, true
}

// Save writes the value synchronously. Each call is atomic with respect to
// itself only; there is no transaction spanning multiple calls.
func (s *Store[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, s.key, string(payload))
}

// Clear removes the key entirely rather than writing an empty value, so a
// cleared store and a never-written store are indistinguishable.
func (s *Store[T]) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, s.key)
}

func (s *Store[T]) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	fields := map[string]any{"key": s.key}
	if err != nil {
		fields["error"] = err.Error()
	}
	s.logg.Warn(s.logg.WithFields(ctx, fields), "kv: "+msg)
}
