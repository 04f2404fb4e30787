package storageimpl

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *StorageImpl {
	t.Helper()

	cfg := &config.Config{}
	cfg.Extractor.OutputDir = t.TempDir()

	s, err := New(Opts{Config: cfg, Logger: logger.New(logger.Opts{Env: "test"})})
	require.NoError(t, err)
	return s
}

func sampleResult() *domain.ExtractionResult {
	takenAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ExtractionResult{
		UserInfo: domain.Profile{
			Pk:          "123",
			Username:    "alice",
			FullName:    "Alice",
			MediaCount:  2,
			ExtractedAt: time.Now(),
		},
		Posts: []domain.Post{
			{
				ID:           "901",
				Code:         "AbC",
				TakenAt:      &takenAt,
				MediaType:    domain.MediaTypePhoto,
				Caption:      "sunset, with a comma",
				LikeCount:    10,
				CommentCount: 2,
				ThumbnailURL: "https://cdn.example/901.jpg",
				LocalFile:    "media/alice_901.jpg",
				Resources:    []string{},
			},
			{
				ID:        "902",
				Code:      "DeF",
				MediaType: domain.MediaTypeVideo,
				PlayCount: 55,
				Resources: []string{},
			},
		},
		Followers: []domain.RelationshipEntry{
			{Pk: "7", Username: "bob", FollowerCount: 3},
		},
		Following: []domain.RelationshipEntry{},
		Timestamp: time.Now(),
	}
}

func TestNewCreatesOutputTree(t *testing.T) {
	s := newTestStorage(t)

	for _, dir := range []string{"profiles", "posts", "stories", "media", "json_data"} {
		info, err := os.Stat(filepath.Join(s.OutputDir(), dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveResultRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	result := sampleResult()

	path, err := s.SaveResult("alice", result)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.OutputDir(), "json_data", "alice_data.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"user_info", "posts", "followers", "following", "extraction_timestamp"} {
		assert.Contains(t, doc, key)
	}

	var parsed domain.ExtractionResult
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed.Posts, len(result.Posts))
	assert.Len(t, parsed.Followers, len(result.Followers))
	assert.Len(t, parsed.Following, len(result.Following))
	assert.Equal(t, result.UserInfo.Pk, parsed.UserInfo.Pk)
	assert.Equal(t, result.UserInfo.Username, parsed.UserInfo.Username)
}

func TestSaveResultPostFields(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.SaveResult("alice", sampleResult())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Posts []map[string]json.RawMessage `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Posts, 2)

	for _, key := range []string{
		"id", "code", "taken_at", "media_type", "caption",
		"like_count", "comment_count", "play_count", "thumbnail_url", "resources",
	} {
		assert.Contains(t, doc.Posts[0], key)
	}

	// local_file only appears on downloaded posts, video URLs never leak.
	assert.Contains(t, doc.Posts[0], "local_file")
	assert.NotContains(t, doc.Posts[1], "local_file")
	assert.NotContains(t, doc.Posts[0], "VideoURL")
	assert.Equal(t, "[]", string(doc.Posts[0]["resources"]))
}

func TestWriteCSVReports(t *testing.T) {
	s := newTestStorage(t)
	result := sampleResult()

	require.NoError(t, s.WriteCSVReports("alice", result))

	f, err := os.Open(filepath.Join(s.OutputDir(), "alice_posts.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per post")
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "901", rows[1][0])
	assert.Equal(t, "sunset, with a comma", rows[1][4])
	assert.Equal(t, "media/alice_901.jpg", rows[1][9])

	followers, err := os.ReadFile(filepath.Join(s.OutputDir(), "alice_followers.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(followers), "bob")

	// Empty category, no file.
	_, err = os.Stat(filepath.Join(s.OutputDir(), "alice_following.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCSVReportsAllEmpty(t *testing.T) {
	s := newTestStorage(t)
	result := &domain.ExtractionResult{
		Posts:     []domain.Post{},
		Followers: []domain.RelationshipEntry{},
		Following: []domain.RelationshipEntry{},
	}

	require.NoError(t, s.WriteCSVReports("ghost", result))

	entries, err := os.ReadDir(s.OutputDir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.True(t, e.IsDir(), "no report files expected, found %s", e.Name())
	}
}
