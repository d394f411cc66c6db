package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"announcebar/internal/features/announcements/domain"
)

func threeSlideBar() *domain.Announcement {
	return &domain.Announcement{
		Slug:       "rotate",
		Visibility: true,
		Type:       domain.TypeCarousel,
		BarHeight:  40,
		IsSticky:   true,
		Slides: []domain.Slide{
			{Title: "One", Message: "a"},
			{Title: "Two", Message: "b"},
			{Title: "Three", Message: "c"},
		},
	}
}

// TestPreview_ActiveSlideOverTime verifies the 0,1,2,0 rotation at 5000ms steps.
func TestPreview_ActiveSlideOverTime(t *testing.T) {
	tests := []struct {
		at     time.Duration
		active string
	}{
		{at: 0, active: "0"},
		{at: 4999 * time.Millisecond, active: "0"},
		{at: 5 * time.Second, active: "1"},
		{at: 10 * time.Second, active: "2"},
		{at: 15 * time.Second, active: "0"},
		{at: 20 * time.Second, active: "1"},
		{at: 15*time.Second + 15*time.Hour, active: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			repo := new(MockAnnouncementRepository)
			repo.On("FindVisibleBySlug", mock.Anything, "rotate").Return(threeSlideBar(), nil).Once()

			page, err := newService(repo, nil).Preview(context.Background(), "rotate", tt.at, domain.PageContext{})
			require.NoError(t, err)

			assert.Contains(t, string(page), `data-active-slide="`+tt.active+`"`)
		})
	}
}

// TestPreview_StickyLayout verifies the page reserves space and publishes the height property.
func TestPreview_StickyLayout(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	repo.On("FindVisibleBySlug", mock.Anything, "rotate").Return(threeSlideBar(), nil).Once()

	page, err := newService(repo, nil).Preview(context.Background(), "rotate", 0, domain.PageContext{})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<html lang="en" style="--announcement-bar-height:40px">`)
	assert.Contains(t, html, `style="margin:0;margin-top:40px"`)
	assert.Contains(t, html, `id="announcement-bar-rotate"`)
	assert.Contains(t, html, `id="announcement-bar-font-inter"`)
	assert.Contains(t, html, "position:fixed")
}

func TestPreview_SingleBar(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	repo.On("FindVisibleBySlug", mock.Anything, "sale").Return(saleBar(), nil).Once()

	page, err := newService(repo, nil).Preview(context.Background(), "sale", -time.Second, domain.PageContext{})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `data-active-slide="-1"`)
	assert.Contains(t, html, `data-preview-at="0"`)
	assert.Contains(t, html, ">Sale</span>")
	assert.Contains(t, html, `style="margin:0;margin-top:0px"`)
}

func TestPreview_NotFound(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	repo.On("FindVisibleBySlug", mock.Anything, "missing").Return(nil, domain.ErrAnnouncementNotFound).Once()

	_, err := newService(repo, nil).Preview(context.Background(), "missing", 0, domain.PageContext{})
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)
}

// TestPreview_PageGates verifies a page the embed script would skip renders without the bar.
func TestPreview_PageGates(t *testing.T) {
	tests := []struct {
		name  string
		page  domain.PageContext
		gated string
	}{
		{name: "DomainMismatch", page: domain.PageContext{Host: "other.com"}, gated: "domain"},
		{name: "PathMismatch", page: domain.PageContext{Host: "www.shop.example.com", Path: "/blog"}, gated: "path"},
		{name: "Match", page: domain.PageContext{Host: "shop.example.com", Path: "/checkout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := saleBar()
			a.AllowedDomain = "shop.example.com"
			a.PagePaths = []string{"/checkout"}
			repo := new(MockAnnouncementRepository)
			repo.On("FindVisibleBySlug", mock.Anything, "sale").Return(a, nil).Once()

			page, err := newService(repo, nil).Preview(context.Background(), "sale", 0, tt.page)
			require.NoError(t, err)

			html := string(page)
			if tt.gated == "" {
				assert.Contains(t, html, `id="announcement-bar-sale"`)
				assert.NotContains(t, html, "data-gated")
				return
			}
			assert.Contains(t, html, `data-gated="`+tt.gated+`"`)
			assert.NotContains(t, html, `id="announcement-bar-sale"`)
			assert.Contains(t, html, `style="margin:0;margin-top:0px"`)
		})
	}
}
