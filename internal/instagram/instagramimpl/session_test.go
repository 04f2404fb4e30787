package instagramimpl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-extractor/internal/instagram"
	"github.com/stretchr/testify/assert"
)

func TestClassifyLoginError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"bad password", goinsta.ErrBadPassword, instagram.ErrBadCredentials},
		{"wrapped bad password", fmt.Errorf("login: %w", goinsta.ErrBadPassword), instagram.ErrBadCredentials},
		{"too many requests", goinsta.ErrTooManyRequests, instagram.ErrTooManyAttempts},
		{"challenge", &goinsta.ChallengeError{Message: "checkpoint"}, instagram.ErrChallengeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyLoginError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyLoginErrorUnclassified(t *testing.T) {
	got := classifyLoginError(errors.New("connection reset"))

	assert.NotErrorIs(t, got, instagram.ErrBadCredentials)
	assert.NotErrorIs(t, got, instagram.ErrTooManyAttempts)
	assert.NotErrorIs(t, got, instagram.ErrChallengeRequired)
	assert.ErrorContains(t, got, "login failed")
}

func TestMapMediaType(t *testing.T) {
	assert.Equal(t, "photo", string(mapMediaType(1)))
	assert.Equal(t, "video", string(mapMediaType(2)))
	assert.Equal(t, "other", string(mapMediaType(8)))
}

func TestBestImageURL(t *testing.T) {
	candidates := []goinsta.Candidate{
		{Width: 320, URL: "small"},
		{Width: 1080, URL: "large"},
		{Width: 640, URL: "medium"},
	}

	assert.Equal(t, "large", bestImageURL(candidates))
	assert.Equal(t, "", bestImageURL(nil))
}
