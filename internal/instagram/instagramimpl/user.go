package instagramimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-extractor/internal/domain"
)

// UserInfo resolves a username to its profile snapshot. A fixed pre-call
// delay is applied to respect the platform rate budget.
func (ig *IgImpl) UserInfo(ctx context.Context, username string) (*domain.Profile, error) {
	time.Sleep(ig.Config.RequestDelayDuration())

	user, err := ig.visitProfile(username)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Pk:             strconv.FormatInt(int64(user.ID), 10),
		Username:       user.Username,
		FullName:       user.FullName,
		Biography:      user.Biography,
		ExternalURL:    user.ExternalURL,
		FollowerCount:  int(user.FollowerCount),
		FollowingCount: int(user.FollowingCount),
		MediaCount:     int(user.MediaCount),
		IsPrivate:      user.IsPrivate,
		IsVerified:     user.IsVerified,
		ProfilePicURL:  user.ProfilePicURL,
		ExtractedAt:    time.Now(),
	}

	ig.Logger.Info("Retrieved user info", "username", username)
	return profile, nil
}

// UserPosts fetches up to limit media items from the user's feed, newest
// first. A failed fetch returns no items, never a partial page set.
func (ig *IgImpl) UserPosts(ctx context.Context, username string, limit int) ([]domain.Post, error) {
	user, err := ig.visitProfile(username)
	if err != nil {
		return nil, err
	}

	feed := user.Feed()
	posts := make([]domain.Post, 0, limit)

	for len(posts) < limit && feed.Next() {
		for _, item := range feed.Items {
			if len(posts) >= limit {
				break
			}
			posts = append(posts, mapPost(item))
		}
	}

	if err := feed.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
		return nil, fmt.Errorf("failed to fetch feed for %s: %w", username, err)
	}

	return posts, nil
}

// Followers fetches up to limit follower entries in platform order.
func (ig *IgImpl) Followers(ctx context.Context, username string, limit int) ([]domain.RelationshipEntry, error) {
	user, err := ig.visitProfile(username)
	if err != nil {
		return nil, err
	}

	return ig.collectUsers(user.Followers(""), username, limit)
}

// Following fetches up to limit following entries in platform order.
func (ig *IgImpl) Following(ctx context.Context, username string, limit int) ([]domain.RelationshipEntry, error) {
	user, err := ig.visitProfile(username)
	if err != nil {
		return nil, err
	}

	return ig.collectUsers(user.Following("", goinsta.DefaultOrder), username, limit)
}

func (ig *IgImpl) visitProfile(username string) (*goinsta.User, error) {
	user, err := ig.Client.Profiles.ByName(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", username, err)
	}
	return user, nil
}

func (ig *IgImpl) collectUsers(pages *goinsta.Users, username string, limit int) ([]domain.RelationshipEntry, error) {
	entries := make([]domain.RelationshipEntry, 0, limit)

	for len(entries) < limit && pages.Next() {
		for _, u := range pages.Users {
			if len(entries) >= limit {
				break
			}
			entries = append(entries, mapRelationship(u))
		}
	}

	if err := pages.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
		return nil, fmt.Errorf("failed to fetch relationship list for %s: %w", username, err)
	}

	return entries, nil
}

func mapPost(item *goinsta.Item) domain.Post {
	post := domain.Post{
		ID:           strconv.FormatInt(int64(item.Pk), 10),
		Code:         item.Code,
		MediaType:    mapMediaType(item.MediaType),
		Caption:      item.Caption.Text,
		LikeCount:    int(item.Likes),
		CommentCount: int(item.CommentCount),
		PlayCount:    int(item.ViewCount),
		ThumbnailURL: bestImageURL(item.Images.Versions),
		Resources:    []string{},
	}

	if taken := int64(item.TakenAt); taken > 0 {
		t := time.Unix(taken, 0).UTC()
		post.TakenAt = &t
	}

	if len(item.Videos) > 0 {
		post.VideoURL = item.Videos[0].URL
	}

	return post
}

func mapRelationship(u *goinsta.User) domain.RelationshipEntry {
	return domain.RelationshipEntry{
		Pk:             strconv.FormatInt(int64(u.ID), 10),
		Username:       u.Username,
		FullName:       u.FullName,
		IsPrivate:      u.IsPrivate,
		IsVerified:     u.IsVerified,
		FollowerCount:  int(u.FollowerCount),
		FollowingCount: int(u.FollowingCount),
		ProfilePicURL:  u.ProfilePicURL,
	}
}

func mapMediaType(mediaType int) domain.MediaType {
	switch mediaType {
	case 1:
		return domain.MediaTypePhoto
	case 2:
		return domain.MediaTypeVideo
	default:
		return domain.MediaTypeOther
	}
}

// bestImageURL picks the widest thumbnail candidate.
func bestImageURL(candidates []goinsta.Candidate) string {
	url := ""
	width := -1
	for _, c := range candidates {
		if c.Width > width {
			width = c.Width
			url = c.URL
		}
	}
	return url
}
