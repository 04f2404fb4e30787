package domain

import "time"

// Profile is the target account's profile snapshot, taken once per
// extraction run. JSON field names follow the persisted document format.
type Profile struct {
	Pk             string    `json:"pk"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Biography      string    `json:"biography"`
	ExternalURL    string    `json:"external_url"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	MediaCount     int       `json:"media_count"`
	IsPrivate      bool      `json:"is_private"`
	IsVerified     bool      `json:"is_verified"`
	ProfilePicURL  string    `json:"profile_pic_url"`
	ExtractedAt    time.Time `json:"extracted_at"`
}
