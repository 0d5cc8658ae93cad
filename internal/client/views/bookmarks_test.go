package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func TestBookmarkList_ToggleOnAndOff(t *testing.T) {
	e := newEnv(t, "u1")
	bookmarks := &repository.BookmarksMock{
		ListFunc: func(ctx context.Context) ([]models.Bookmark, error) {
			return []models.Bookmark{{ID: "b1", UserID: "u1", ArticleID: "a1"}}, nil
		},
		ToggleFunc: func(ctx context.Context, articleID string) (api.BookmarkToggleResponse, error) {
			if articleID == "a1" {
				return api.BookmarkToggleResponse{Active: false}, nil
			}
			return api.BookmarkToggleResponse{
				Active:   true,
				Bookmark: &models.Bookmark{ID: "b2", UserID: "u1", ArticleID: articleID},
			}, nil
		},
	}

	v := NewBookmarkList(e.deps, bookmarks)
	require.NoError(t, v.Open(context.Background()))
	defer v.Close()

	assert.Equal(t, realtime.Subscribed, e.subs.State(realtime.BookmarksScope("u1")))
	assert.True(t, v.IsBookmarked("a1"))

	require.NoError(t, v.Toggle(context.Background(), "a2"))
	assert.True(t, v.IsBookmarked("a2"))
	require.Len(t, v.Bookmarks(), 2)
	assert.Equal(t, "b2", v.Bookmarks()[1].ID)

	require.NoError(t, v.Toggle(context.Background(), "a1"))
	assert.False(t, v.IsBookmarked("a1"))
	assert.Len(t, v.Bookmarks(), 1)
}

func TestBookmarkList_ToggleWithoutSession(t *testing.T) {
	e := newEnv(t, "")
	bookmarks := &repository.BookmarksMock{
		ToggleFunc: func(ctx context.Context, articleID string) (api.BookmarkToggleResponse, error) {
			return api.BookmarkToggleResponse{}, apperr.New(apperr.KindUnauthenticated, "toggle bookmark", "sign in to bookmark articles")
		},
	}

	v := NewBookmarkList(e.deps, bookmarks)
	require.NoError(t, v.Open(context.Background()))
	defer v.Close()

	assert.Empty(t, bookmarks.ListCalls())
	assert.Empty(t, e.subs.Active())

	err := v.Toggle(context.Background(), "a1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	assert.Empty(t, v.Bookmarks())
	assert.False(t, v.IsBookmarked("a1"))

	errs := e.notes.Errors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], apperr.ErrUnauthenticated)
}

func TestBookmarkList_InconsistentServerState(t *testing.T) {
	e := newEnv(t, "u1")
	bookmarks := &repository.BookmarksMock{
		ListFunc: func(ctx context.Context) ([]models.Bookmark, error) {
			return nil, nil
		},
		ToggleFunc: func(ctx context.Context, articleID string) (api.BookmarkToggleResponse, error) {
			// закладка уже была снята с другого устройства
			return api.BookmarkToggleResponse{Active: false}, nil
		},
	}

	v := NewBookmarkList(e.deps, bookmarks)
	require.NoError(t, v.Open(context.Background()))
	defer v.Close()

	err := v.Toggle(context.Background(), "a1")
	assert.Equal(t, apperr.KindNetworkOrServer, apperr.KindOf(err))
	assert.Empty(t, v.Bookmarks())
}

func TestBookmarkList_OtherDeviceEvents(t *testing.T) {
	e := newEnv(t, "u1")
	bookmarks := &repository.BookmarksMock{
		ListFunc: func(ctx context.Context) ([]models.Bookmark, error) {
			return nil, nil
		},
	}

	v := NewBookmarkList(e.deps, bookmarks)
	require.NoError(t, v.Open(context.Background()))
	defer v.Close()

	// события собственного пользователя пропускаются, даже с другого устройства
	e.publish(t, realtime.BookmarksScope("u1"), api.EventInsert, "u1",
		models.Bookmark{ID: "b1", UserID: "u1", ArticleID: "a1"})
	e.publish(t, realtime.BookmarksScope("u1"), api.EventInsert, "admin",
		models.Bookmark{ID: "b2", UserID: "u1", ArticleID: "a2"})

	require.Eventually(t, func() bool {
		return v.IsBookmarked("a2")
	}, waitFor, 5*time.Millisecond)
	assert.False(t, v.IsBookmarked("a1"))
}
