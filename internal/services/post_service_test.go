package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/dto"
)

func strPtr(s string) *string { return &s }

func seedPost(t *testing.T, s *PostService, title string, chapter, menu, submenu *string, order int) {
	t.Helper()

	_, err := s.Create(&dto.CreatePostRequest{
		Title:      title,
		Chapter:    chapter,
		Menu:       menu,
		Submenu:    submenu,
		OrderIndex: order,
	})
	require.NoError(t, err)
}

func TestPostListFilterDispatch(t *testing.T) {
	db := newTestDB(t)
	s := NewPostService(db)

	seedPost(t, s, "in chapter", strPtr("candlesticks"), nil, nil, 0)
	seedPost(t, s, "in menu", nil, strPtr("education"), nil, 0)
	seedPost(t, s, "in submenu", nil, strPtr("education"), strPtr("indicators"), 0)

	// chapter wins over menu and submenu when several filters are sent.
	posts, err := s.List("basic", "candlesticks", "education", "indicators")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in chapter", posts[0].Title)

	// submenu wins over menu.
	posts, err = s.List("basic", "", "education", "indicators")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in submenu", posts[0].Title)

	posts, err = s.List("basic", "", "education", "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// No filter returns the whole catalog.
	posts, err = s.List("basic", "", "", "")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestPostListOrdersByOrderIndex(t *testing.T) {
	db := newTestDB(t)
	s := NewPostService(db)

	seedPost(t, s, "third", strPtr("basics"), nil, nil, 30)
	seedPost(t, s, "first", strPtr("basics"), nil, nil, 10)
	seedPost(t, s, "second", strPtr("basics"), nil, nil, 20)

	posts, err := s.List("basic", "basics", "", "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "third", posts[2].Title)
}

func TestPostListRestrictedBuckets(t *testing.T) {
	db := newTestDB(t)
	s := NewPostService(db)

	seedPost(t, s, "vip signal", nil, strPtr("vip"), nil, 0)
	seedPost(t, s, "strategy deep dive", strPtr("strategies"), nil, nil, 0)

	_, err := s.List("basic", "", "vip", "")
	assert.ErrorIs(t, err, ErrBucketForbidden)

	_, err = s.List("advanced", "strategies", "", "")
	assert.ErrorIs(t, err, ErrBucketForbidden)

	posts, err := s.List("premium", "", "vip", "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = s.List("premium", "strategies", "", "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostListUnfilteredExcludesRestrictedBuckets(t *testing.T) {
	db := newTestDB(t)
	s := NewPostService(db)

	seedPost(t, s, "open lesson", strPtr("basics"), nil, nil, 0)
	seedPost(t, s, "vip signal", nil, strPtr("vip"), nil, 0)
	seedPost(t, s, "strategy deep dive", strPtr("strategies"), nil, nil, 0)

	// Omitting every filter must not hand restricted posts to lower plans.
	for _, plan := range []string{"basic", "advanced"} {
		posts, err := s.List(plan, "", "", "")
		require.NoError(t, err)
		require.Len(t, posts, 1, "plan=%s", plan)
		assert.Equal(t, "open lesson", posts[0].Title)
	}

	posts, err := s.List("premium", "", "", "")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestPostGetForPlanRestrictedBuckets(t *testing.T) {
	db := newTestDB(t)
	s := NewPostService(db)

	restricted, err := s.Create(&dto.CreatePostRequest{
		Title: "vip signal",
		Menu:  strPtr("vip"),
	})
	require.NoError(t, err)
	open, err := s.Create(&dto.CreatePostRequest{
		Title:   "open lesson",
		Chapter: strPtr("basics"),
	})
	require.NoError(t, err)

	// Knowing the UUID is not enough to read a restricted post.
	_, err = s.GetForPlan(restricted.ID, "basic")
	assert.ErrorIs(t, err, ErrBucketForbidden)

	got, err := s.GetForPlan(restricted.ID, "premium")
	require.NoError(t, err)
	assert.Equal(t, restricted.ID, got.ID)

	got, err = s.GetForPlan(open.ID, "basic")
	require.NoError(t, err)
	assert.Equal(t, open.ID, got.ID)
}
