package domain

import "time"

// MediaType classifies a post's content. Platform media type 1 maps to
// photo, 2 to video; anything else passes through as other.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
	MediaTypeOther MediaType = "other"
)

// Post is a single published media item with engagement metrics.
type Post struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	TakenAt      *time.Time `json:"taken_at"`
	MediaType    MediaType  `json:"media_type"`
	Caption      string     `json:"caption"`
	LikeCount    int        `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	PlayCount    int        `json:"play_count"`
	ThumbnailURL string     `json:"thumbnail_url"`

	// LocalFile is the output-dir-relative path of the downloaded media
	// file. Set if and only if the download succeeded.
	LocalFile string `json:"local_file,omitempty"`

	// Resources would hold the sub-items of a carousel post. Carousels are
	// not expanded, so the list is always empty.
	Resources []string `json:"resources"`

	// VideoURL is the stream URL used for video downloads. It is collector
	// plumbing, not part of the persisted document.
	VideoURL string `json:"-"`
}
