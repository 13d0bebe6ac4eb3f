package registry

import "github.com/mergington/activities/internal/model"

// Seed returns a fresh copy of the fixed activity set the school publishes.
// There is no dynamic creation or deletion of activities; a restart always
// comes back to exactly this state.
func Seed() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Soccer Team": {
			Description:     "Join our competitive soccer team and play in inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball skills and participate in friendly tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "lily@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"emily@mergington.edu", "noah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Develop acting skills and perform in school theater productions",
			Schedule:        "Thursdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"ava@mergington.edu", "william@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific concepts through hands-on projects",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking skills through competitive debates",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"isabella@mergington.edu", "ethan@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
