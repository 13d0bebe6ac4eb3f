// Package model defines the core domain types for the activity signup service.
package model

// Activity represents an extracurricular offering students can join.
// Its name lives in the registry map key, so it is not repeated here;
// the JSON shape below is exactly what GET /activities returns per entry.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Spots returns the number of open spots left.
func (a *Activity) Spots() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when the activity is at capacity. Informational only:
// signup does not consult it.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a copy whose participant slice shares no storage with the
// original, so registry snapshots cannot be mutated by callers.
func (a *Activity) Clone() Activity {
	out := *a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// MessageResponse is the JSON envelope for successful signup/removal.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope for all error responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
