package models

// Profile is the single local user profile.
type Profile struct {
	// Name is the display name. An empty name means the profile was never saved.
	Name string `json:"name"`

	// AvatarURI is an opaque image reference.
	AvatarURI string `json:"avatarUri,omitempty"`

	// Notifications enables reminders for calendar events.
	Notifications bool `json:"notifications"`
}

// DefaultProfile is the profile used before anything has been saved.
func DefaultProfile() Profile {
	return Profile{Notifications: true}
}
