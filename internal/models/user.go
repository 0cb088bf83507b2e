package models

import "time"

// UserProfile is the public part of a registered account. It is what gets
// persisted as the session payload and returned to the view layer.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DirectoryEntry is one record of the account directory, keyed by lowercased
// email in the persisted map. Password holds a bcrypt hash, never plaintext.
type DirectoryEntry struct {
	Profile  UserProfile `json:"profile"`
	Password string      `json:"password"`
}

// ProfileUpdate carries a partial profile edit. Nil fields are left untouched.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Address *string `json:"address,omitempty"`
}
