package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/unipress/internal/client/views"
)

func (c *Cli) openBookmarks(ctx context.Context) (*views.BookmarkList, error) {
	list := views.NewBookmarkList(c.viewDeps(nil, nil), c.repos.Bookmarks)
	if err := list.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	return list, nil
}

func (c *Cli) runBookmarksList(ctx context.Context) error {
	if _, ok := c.sessions.Current(); !ok {
		return fmt.Errorf("not authenticated. Please run 'unipress login' first")
	}

	list, err := c.openBookmarks(ctx)
	if err != nil {
		return err
	}
	defer list.Close()

	return c.render("bookmarks", bookmarksTemplate, list.Bookmarks())
}

func (c *Cli) runBookmarkToggle(ctx context.Context, articleID string) error {
	list, err := c.openBookmarks(ctx)
	if err != nil {
		return err
	}
	defer list.Close()

	if err := list.Toggle(ctx, articleID); err != nil {
		return reported(err)
	}

	if list.IsBookmarked(articleID) {
		c.io.Println("✓ Bookmarked")
	} else {
		c.io.Println("✓ Bookmark removed")
	}
	return nil
}
