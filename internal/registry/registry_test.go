package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedContainsAllActivities(t *testing.T) {
	reg := New()
	activities := reg.List()

	expected := []string{
		"Soccer Team", "Basketball Club", "Art Studio", "Drama Club",
		"Science Club", "Debate Team", "Chess Club", "Programming Class", "Gym Class",
	}
	require.Len(t, activities, len(expected))
	for _, name := range expected {
		a, ok := activities[name]
		require.True(t, ok, "missing seed activity %q", name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Schedule)
		assert.Positive(t, a.MaxParticipants)
		assert.NotNil(t, a.Participants)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	reg := New()

	first := reg.List()
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"

	second := reg.List()
	assert.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0],
		"mutating a snapshot must not leak into the registry")
}

func TestGet(t *testing.T) {
	reg := New()

	a, err := reg.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, 12, a.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, a.Participants)

	_, err = reg.Get("chess club")
	assert.ErrorIs(t, err, ErrActivityNotFound, "names are case-sensitive")

	_, err = reg.Get("Quidditch")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnroll(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{"new participant", "Soccer Team", "newstudent@mergington.edu", nil},
		{"name with spaces matched exactly", "Programming Class", "coder@mergington.edu", nil},
		{"duplicate email", "Soccer Team", "alex@mergington.edu", ErrAlreadyEnrolled},
		{"unknown activity", "Underwater Basket Weaving", "someone@mergington.edu", ErrActivityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New()
			before := reg.List()

			err := reg.Enroll(tt.activity, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, reg.List(), "failed enroll must not mutate anything")
				return
			}

			require.NoError(t, err)
			after, err := reg.Get(tt.activity)
			require.NoError(t, err)
			assert.Len(t, after.Participants, len(before[tt.activity].Participants)+1)
			assert.Equal(t, tt.email, after.Participants[len(after.Participants)-1],
				"new participant is appended, preserving order")
		})
	}
}

func TestEnrollIgnoresCapacity(t *testing.T) {
	// max_participants is informational; signup must not enforce it.
	reg := New()
	a, err := reg.Get("Chess Club")
	require.NoError(t, err)

	for i := len(a.Participants); i < a.MaxParticipants+3; i++ {
		err := reg.Enroll("Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	full, err := reg.Get("Chess Club")
	require.NoError(t, err)
	assert.Greater(t, len(full.Participants), full.MaxParticipants)
	assert.True(t, full.IsFull())
	assert.Negative(t, full.Spots())
}

func TestRemove(t *testing.T) {
	t.Run("removes exactly one email, order preserved", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.Enroll("Art Studio", "third@mergington.edu"))

		err := reg.Remove("Art Studio", "emily@mergington.edu")
		require.NoError(t, err)

		a, err := reg.Get("Art Studio")
		require.NoError(t, err)
		assert.Equal(t, []string{"noah@mergington.edu", "third@mergington.edu"}, a.Participants)
	})

	t.Run("unknown activity", func(t *testing.T) {
		reg := New()
		err := reg.Remove("Fake Activity", "alex@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("email not enrolled", func(t *testing.T) {
		reg := New()
		before := reg.List()

		err := reg.Remove("Soccer Team", "stranger@mergington.edu")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
		assert.Equal(t, before, reg.List())
	})
}

func TestEnrollRemoveRoundTrip(t *testing.T) {
	reg := New()
	before, err := reg.Get("Debate Team")
	require.NoError(t, err)

	require.NoError(t, reg.Enroll("Debate Team", "workflow@mergington.edu"))
	require.NoError(t, reg.Remove("Debate Team", "workflow@mergington.edu"))

	after, err := reg.Get("Debate Team")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants)
}

func TestSameEmailAcrossActivities(t *testing.T) {
	reg := New()
	email := "multisport@mergington.edu"
	joined := []string{"Soccer Team", "Chess Club", "Programming Class"}

	for _, name := range joined {
		require.NoError(t, reg.Enroll(name, email))
	}

	for _, name := range joined {
		a, err := reg.Get(name)
		require.NoError(t, err)
		assert.Contains(t, a.Participants, email)
	}

	// Removing from one activity leaves the others untouched.
	require.NoError(t, reg.Remove("Chess Club", email))
	a, err := reg.Get("Soccer Team")
	require.NoError(t, err)
	assert.Contains(t, a.Participants, email)
}

func TestConcurrentEnrollUniqueEmails(t *testing.T) {
	reg := New()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Enroll("Gym Class", fmt.Sprintf("runner%d@mergington.edu", i))
		}(i)
	}
	wg.Wait()

	a, err := reg.Get("Gym Class")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 2+n)
}

func TestConcurrentEnrollSameEmail(t *testing.T) {
	// The duplicate check and the append happen under one lock, so racing
	// signups for the same email produce exactly one enrollment.
	reg := New()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Enroll("Science Club", "racer@mergington.edu")
		}()
	}
	wg.Wait()

	a, err := reg.Get("Science Club")
	require.NoError(t, err)
	count := 0
	for _, p := range a.Participants {
		if p == "racer@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
