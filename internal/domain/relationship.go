package domain

// RelationshipEntry is one account from a followers or following list.
type RelationshipEntry struct {
	Pk             string `json:"pk"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	IsPrivate      bool   `json:"is_private"`
	IsVerified     bool   `json:"is_verified"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	ProfilePicURL  string `json:"profile_pic_url"`
}
