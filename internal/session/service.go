package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/douceurdz/storefront-backend/pkg/config"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/kv"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// Persisted keys. The photo is stored outside the record, as a raw string
// with "" meaning no photo.
const (
	UserKey  = "user"
	PhotoKey = "profilePhoto"
)

const minPasswordLen = 6

// resetMessage deliberately does not reveal whether the account exists.
const resetMessage = "If an account exists with this email, you will receive reset instructions shortly."

// Record is the persisted session. A non-empty username is the sole
// authentication predicate; passwords are accepted at login but never
// stored or verified.
type Record struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func validateRecord(r Record) error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("session without username")
	}
	return nil
}

// Service owns the persisted session identity and profile photo.
type Service struct {
	backend kv.Backend
	store   *kv.Store[Record]
	cfg     config.ResetConfig
	logg    *logger.Logger
}

// NewService binds the session store to a persistence backend.
func NewService(backend kv.Backend, cfg config.ResetConfig, logg *logger.Logger) *Service {
	return &Service{
		backend: backend,
		store:   kv.NewStore(backend, UserKey, validateRecord, logg),
		cfg:     cfg,
		logg:    logg,
	}
}

// Current returns the persisted session, if any. This is the route-guard
// predicate: a record with a non-empty username means "logged in".
func (s *Service) Current(ctx context.Context) (Record, bool) {
	return s.store.Load(ctx)
}

// Login records the visitor as logged in. The password is required by the
// form but never checked against anything.
func (s *Service) Login(ctx context.Context, username, password string) (Record, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if password == "" {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	record := Record{Username: username}
	if err := s.store.Save(ctx, record); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting session")
	}

	// Seed the photo sentinel only when no photo was ever stored.
	if _, ok, err := s.backend.Get(ctx, PhotoKey); err == nil && !ok {
		if err := s.backend.Set(ctx, PhotoKey, ""); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "seeding profile photo failed")
		}
	}

	return record, nil
}

// SignupInput carries the registration form.
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup validates the registration form and records the new identity.
// Validation failures are recoverable; the form stays editable.
func (s *Service) Signup(ctx context.Context, input SignupInput) (Record, error) {
	if strings.TrimSpace(input.Username) == "" {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if input.Password != input.ConfirmPassword {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "passwords don't match")
	}
	if len(input.Password) < minPasswordLen {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 6 characters")
	}

	record := Record{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting session")
	}
	if err := s.backend.Set(ctx, PhotoKey, ""); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resetting profile photo")
	}

	return record, nil
}

// Logout destroys the session. The profile photo is left behind, matching
// the storefront's behavior of keeping it for the next login.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// ProfileInput carries the profile-settings form.
type ProfileInput struct {
	Username string
	Email    string
	Phone    string
	Photo    string
}

// UpdateProfile rewrites the session record. The photo is only written
// when the form actually carries one.
func (s *Service) UpdateProfile(ctx context.Context, input ProfileInput) (Record, error) {
	if strings.TrimSpace(input.Username) == "" {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}

	record := Record{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting profile")
	}

	if input.Photo != "" {
		if err := s.backend.Set(ctx, PhotoKey, input.Photo); err != nil {
			return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting profile photo")
		}
	}

	return record, nil
}

// Photo returns the stored profile photo, "" when none.
func (s *Service) Photo(ctx context.Context) string {
	value, ok, err := s.backend.Get(ctx, PhotoKey)
	if err != nil || !ok {
		return ""
	}
	return value
}

// RequestPasswordReset simulates sending reset instructions. It always
// reports success after a fixed delay; there is no account lookup.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	if s.cfg.SendDelay > 0 {
		timer := time.NewTimer(s.cfg.SendDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "reset interrupted")
		}
	}

	return resetMessage, nil
}
