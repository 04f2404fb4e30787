package storageimpl

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// WriteCSVReports writes one CSV table per non-empty category at the output
// root. An empty category produces no file.
func (s *StorageImpl) WriteCSVReports(username string, result *domain.ExtractionResult) error {
	if len(result.Posts) > 0 {
		path := filepath.Join(s.outputDir, fmt.Sprintf("%s_posts.csv", username))
		if err := s.writePostsCSV(path, result.Posts); err != nil {
			return err
		}
	}

	if len(result.Followers) > 0 {
		path := filepath.Join(s.outputDir, fmt.Sprintf("%s_followers.csv", username))
		if err := s.writeRelationshipCSV(path, result.Followers); err != nil {
			return err
		}
	}

	if len(result.Following) > 0 {
		path := filepath.Join(s.outputDir, fmt.Sprintf("%s_following.csv", username))
		if err := s.writeRelationshipCSV(path, result.Following); err != nil {
			return err
		}
	}

	s.Logger.Info("CSV reports generated", "username", username)
	return nil
}

func (s *StorageImpl) writePostsCSV(path string, posts []domain.Post) error {
	header := []string{
		"id", "code", "taken_at", "media_type", "caption",
		"like_count", "comment_count", "play_count", "thumbnail_url", "local_file",
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		takenAt := ""
		if p.TakenAt != nil {
			takenAt = p.TakenAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			p.ID,
			p.Code,
			takenAt,
			string(p.MediaType),
			p.Caption,
			strconv.Itoa(p.LikeCount),
			strconv.Itoa(p.CommentCount),
			strconv.Itoa(p.PlayCount),
			p.ThumbnailURL,
			p.LocalFile,
		})
	}

	return writeCSV(path, header, rows)
}

func (s *StorageImpl) writeRelationshipCSV(path string, entries []domain.RelationshipEntry) error {
	header := []string{
		"pk", "username", "full_name", "is_private", "is_verified",
		"follower_count", "following_count", "profile_pic_url",
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Pk,
			e.Username,
			e.FullName,
			strconv.FormatBool(e.IsPrivate),
			strconv.FormatBool(e.IsVerified),
			strconv.Itoa(e.FollowerCount),
			strconv.Itoa(e.FollowingCount),
			e.ProfilePicURL,
		})
	}

	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}

	w.Flush()
	return w.Error()
}
