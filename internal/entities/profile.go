package entities

import (
	"strings"
	"time"
)

// Profile is the stored document for one user
type Profile struct {
	UserID           string     `json:"id"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"displayName"`
	Character        *Character `json:"character"`
	RegistrationDate time.Time  `json:"registrationDate"`
	// Revision is assigned by the store on every write and only grows
	Revision int64 `json:"revision,omitempty"`
}

// NewProfile builds the default profile created on first login. The display
// name defaults to the local part of the email address.
func NewProfile(userID, email, characterID string, now time.Time) *Profile {
	display := email
	if i := strings.Index(email, "@"); i > 0 {
		display = email[:i]
	}
	return &Profile{
		UserID:           userID,
		Email:            email,
		DisplayName:      display,
		Character:        NewCharacter(characterID, ""),
		RegistrationDate: now,
	}
}
