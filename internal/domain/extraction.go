package domain

import "time"

// ExtractionResult aggregates everything collected in one run. It is only
// constructed when the profile fetch succeeded.
type ExtractionResult struct {
	UserInfo  Profile             `json:"user_info"`
	Posts     []Post              `json:"posts"`
	Followers []RelationshipEntry `json:"followers"`
	Following []RelationshipEntry `json:"following"`
	Timestamp time.Time           `json:"extraction_timestamp"`
}

// ExtractionRun is the archive record of one completed extraction.
type ExtractionRun struct {
	ID             int
	Username       string
	PostCount      int
	FollowerCount  int
	FollowingCount int
	JSONPath       string
	CreatedAt      time.Time
}
