// Package service implements business logic between the HTTP handlers and the
// activity registry: input checks, confirmation messages, error pass-through.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/registry"
)

// ErrEmailRequired is returned when a signup or removal arrives without an
// email address.
var ErrEmailRequired = errors.New("email query parameter is required")

// SignupService orchestrates signup-related operations against the registry.
type SignupService struct {
	reg *registry.Registry
}

// NewSignupService constructs a SignupService.
func NewSignupService(reg *registry.Registry) *SignupService {
	return &SignupService{reg: reg}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *SignupService) ListActivities(ctx context.Context) map[string]model.Activity {
	return s.reg.List()
}

// GetActivity returns a single activity by its exact name.
func (s *SignupService) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	return s.reg.Get(name)
}

// Signup enrolls email in the named activity and returns the confirmation
// message. The email is an opaque string: no format validation, no
// normalization, only a presence check.
func (s *SignupService) Signup(ctx context.Context, name, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}
	if err := s.reg.Enroll(name, email); err != nil {
		// Surface domain errors directly so handlers can set correct HTTP status.
		if errors.Is(err, registry.ErrActivityNotFound) || errors.Is(err, registry.ErrAlreadyEnrolled) {
			return "", err
		}
		return "", fmt.Errorf("enroll in activity: %w", err)
	}
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Remove unenrolls email from the named activity and returns the confirmation
// message.
func (s *SignupService) Remove(ctx context.Context, name, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}
	if err := s.reg.Remove(name, email); err != nil {
		if errors.Is(err, registry.ErrActivityNotFound) || errors.Is(err, registry.ErrParticipantNotFound) {
			return "", err
		}
		return "", fmt.Errorf("remove from activity: %w", err)
	}
	return fmt.Sprintf("Removed %s from %s", email, name), nil
}
