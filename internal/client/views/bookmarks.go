package views

import (
	"context"
	"log/slog"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/optimistic"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// BookmarkList закладки текущего пользователя
type BookmarkList struct {
	bookmarks repository.Bookmarks
	session   session.TokenSource
	notifier  notify.Notifier
	logger    *slog.Logger
	onChange  func()
	res       *optimistic.Resource[models.Bookmark]
	live      live
}

// NewBookmarkList создает список закладок
func NewBookmarkList(deps Deps, bookmarks repository.Bookmarks) *BookmarkList {
	deps = deps.withDefaults()
	logger := deps.Logger.With("view", "bookmarks")
	return &BookmarkList{
		bookmarks: bookmarks,
		session:   deps.Session,
		notifier:  deps.Notifier,
		logger:    logger,
		onChange:  deps.OnChange,
		live:      live{subs: deps.Subscriptions},
		res: optimistic.New(optimistic.Options[models.Bookmark]{
			Notifier: deps.Notifier,
			Logger:   logger,
			Label:    "bookmark",
			Order:    optimistic.OldestFirst,
		}),
	}
}

// Open загружает закладки и подписывается на их изменения.
// Без сессии список остается пустым.
func (v *BookmarkList) Open(ctx context.Context) error {
	userID := v.session.UserID()
	if userID == "" {
		v.res.Clear()
		return nil
	}

	if err := v.Refresh(ctx); err != nil {
		return err
	}
	return v.live.open(ctx, realtime.BookmarksScope(userID), v.handle)
}

// Refresh перечитывает закладки
func (v *BookmarkList) Refresh(ctx context.Context) error {
	bookmarks, err := v.bookmarks.List(ctx)
	if err != nil {
		return err
	}
	v.res.Load(bookmarks)
	return nil
}

// Close отписывается от изменений
func (v *BookmarkList) Close() {
	v.live.close()
}

// Bookmarks закладки в порядке добавления
func (v *BookmarkList) Bookmarks() []models.Bookmark {
	return v.res.Values()
}

// IsBookmarked проверяет, есть ли закладка на статью
func (v *BookmarkList) IsBookmarked(articleID string) bool {
	return v.res.Contains(articleID)
}

// Toggle добавляет или снимает закладку на статью
func (v *BookmarkList) Toggle(ctx context.Context, articleID string) error {
	const op = "toggle bookmark"

	if v.res.Contains(articleID) {
		_, err := v.res.Run(ctx, optimistic.Mutation[models.Bookmark]{
			Kind: optimistic.Delete,
			Key:  articleID,
		}, func(ctx context.Context) (models.Bookmark, error) {
			resp, err := v.bookmarks.Toggle(ctx, articleID)
			if err != nil {
				return models.Bookmark{}, err
			}
			if resp.Active {
				return models.Bookmark{}, apperr.New(apperr.KindNetworkOrServer, op, "bookmark state changed on server, refresh the list")
			}
			return models.Bookmark{}, nil
		})
		return err
	}

	_, err := v.res.Run(ctx, optimistic.Mutation[models.Bookmark]{
		Kind:   optimistic.Insert,
		Record: models.Bookmark{ArticleID: articleID, UserID: v.session.UserID()},
	}, func(ctx context.Context) (models.Bookmark, error) {
		resp, err := v.bookmarks.Toggle(ctx, articleID)
		if err != nil {
			return models.Bookmark{}, err
		}
		if !resp.Active || resp.Bookmark == nil {
			return models.Bookmark{}, apperr.New(apperr.KindNetworkOrServer, op, "bookmark state changed on server, refresh the list")
		}
		return *resp.Bookmark, nil
	})
	return err
}

func (v *BookmarkList) handle(ev api.ChangeEvent) {
	e, err := decodeEvent[models.Bookmark](ev)
	if err != nil {
		v.logger.Warn("Skipping event", "error", err)
		return
	}
	if v.res.Apply(e, v.session.UserID()) {
		v.onChange()
	}
}
