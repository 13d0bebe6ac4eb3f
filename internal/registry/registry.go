// Package registry implements the in-memory activity registry. It is the only
// stateful component of the service: a map of activity name to record, seeded
// at construction and reset on every process start.
package registry

import (
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ErrActivityNotFound is returned when the requested activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadyEnrolled is returned when the same email signs up twice for one
// activity.
var ErrAlreadyEnrolled = errors.New("student already signed up for this activity")

// ErrParticipantNotFound is returned when removing an email that is not
// enrolled in the activity.
var ErrParticipantNotFound = errors.New("student not found in this activity")

// Registry holds all activities keyed by their exact, case-sensitive name.
// Handlers run concurrently, so every operation takes the mutex; the
// "at most one occurrence of an email per activity" invariant depends on the
// duplicate check and the append happening under the same lock.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New constructs a Registry populated with the seed set.
func New() *Registry {
	return &Registry{activities: Seed()}
}

// List returns a snapshot of every activity. Participant slices are copied so
// the caller cannot mutate registry state through the result.
func (r *Registry) List() map[string]model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a snapshot of a single activity or ErrActivityNotFound.
func (r *Registry) Get(name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Enroll appends email to the activity's participant list, preserving the
// order of everyone already enrolled. Capacity is stored but deliberately not
// checked here; MaxParticipants is display information.
func (r *Registry) Enroll(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyEnrolled
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Remove deletes exactly one occurrence of email from the activity, leaving
// the relative order of the remaining participants untouched.
func (r *Registry) Remove(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}
