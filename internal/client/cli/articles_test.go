package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func TestCli_runArticlesList(t *testing.T) {
	articles := &repository.ArticlesMock{
		ListFunc: func(ctx context.Context, params repository.ListArticlesParams) (*api.ArticleList, error) {
			return &api.ArticleList{
				Articles: []models.Article{
					{ID: "a1", Slug: "first-news", Title: "First news", Summary: strings.Repeat("s", 100), CommentCount: 3},
					{ID: "a2", Slug: "second-news", Title: "Second news"},
				},
				Page:     params.Page,
				PageSize: params.PageSize,
				Total:    42,
			}, nil
		},
	}

	c, out := newTestCli(t, signedOut(), &repository.Set{Articles: articles})
	require.NoError(t, c.runArticlesList(context.Background(), repository.ListArticlesParams{Page: 2, PageSize: 20}))

	assertContainsAll(t, out.String(),
		"=== Articles (published) ===",
		"Page 2 of 3 (42 total)",
		"- First news",
		"Slug:     first-news",
		"Comments: 3",
		strings.Repeat("s", 80)+"...",
		"- Second news",
	)

	require.Len(t, articles.ListCalls(), 1)
	assert.Equal(t, 2, articles.ListCalls()[0].Params.Page)
}

func TestCli_runArticlesList_Empty(t *testing.T) {
	articles := &repository.ArticlesMock{
		ListFunc: func(ctx context.Context, params repository.ListArticlesParams) (*api.ArticleList, error) {
			return &api.ArticleList{}, nil
		},
	}

	c, out := newTestCli(t, signedOut(), &repository.Set{Articles: articles})
	require.NoError(t, c.runArticlesList(context.Background(), repository.ListArticlesParams{Status: models.ArticleDraft}))
	assertContainsAll(t, out.String(), "Articles (draft)", "No articles found.")
}

func TestCli_runArticlesList_InvalidStatus(t *testing.T) {
	articles := &repository.ArticlesMock{}
	c, _ := newTestCli(t, signedOut(), &repository.Set{Articles: articles})

	err := c.runArticlesList(context.Background(), repository.ListArticlesParams{Status: "secret"})
	require.Error(t, err)
	assert.Empty(t, articles.ListCalls())
}

func TestCli_runArticleShow(t *testing.T) {
	articles := &repository.ArticlesMock{
		GetFunc: func(ctx context.Context, idOrSlug string) (models.Article, error) {
			return models.Article{ID: "a1", Slug: idOrSlug, Title: "Big news", Content: "Body text", Status: models.ArticlePublished}, nil
		},
	}
	reactions := &repository.ReactionsMock{
		SummaryFunc: func(ctx context.Context, articleID string) ([]models.ReactionSummary, error) {
			return []models.ReactionSummary{{ArticleID: articleID, Kind: models.ReactionLike, Count: 5, UserReacted: true}}, nil
		},
	}

	c, out := newTestCli(t, signedOut(), &repository.Set{Articles: articles, Reactions: reactions})
	require.NoError(t, c.runArticleShow(context.Background(), "big-news"))

	assertContainsAll(t, out.String(), "=== Big news ===", "Slug:    big-news", "Body text", "like=5*")
}

func TestCli_runArticleCreate(t *testing.T) {
	articles := &repository.ArticlesMock{
		CreateFunc: func(ctx context.Context, req api.ArticleRequest) (models.Article, error) {
			return models.Article{ID: "a9", Slug: "city-council-meets", Title: req.Title}, nil
		},
	}

	c, out := newTestCli(t, signedIn("u1", models.RoleAuthor), &repository.Set{Articles: articles},
		"City council meets", "Short summary", "Full story", "")
	require.NoError(t, c.runArticleCreate(context.Background()))

	require.Len(t, articles.CreateCalls(), 1)
	req := articles.CreateCalls()[0].Req
	assert.Equal(t, "City council meets", req.Title)
	assert.Equal(t, "Full story", req.Content)
	assert.Empty(t, req.CoverURL)
	assertContainsAll(t, out.String(), "Draft saved", "ID:   a9")
}

func TestCli_runArticleCreate_Invalid(t *testing.T) {
	articles := &repository.ArticlesMock{}

	c, _ := newTestCli(t, signedIn("u1", models.RoleAuthor), &repository.Set{Articles: articles},
		"ab", "", "content", "")
	err := c.runArticleCreate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid article")
	assert.Empty(t, articles.CreateCalls())
}

func TestCli_runArticleEdit_KeepsEmptyFields(t *testing.T) {
	articles := &repository.ArticlesMock{
		GetFunc: func(ctx context.Context, idOrSlug string) (models.Article, error) {
			return models.Article{ID: "a1", Title: "Old title", Summary: "Old summary", Content: "Old content"}, nil
		},
		UpdateFunc: func(ctx context.Context, id string, req api.ArticleRequest) (models.Article, error) {
			return models.Article{ID: id, Title: req.Title, Version: 4}, nil
		},
	}

	c, out := newTestCli(t, signedIn("u1", models.RoleAuthor), &repository.Set{Articles: articles},
		"New title", "", "", "")
	require.NoError(t, c.runArticleEdit(context.Background(), "a1"))

	require.Len(t, articles.UpdateCalls(), 1)
	req := articles.UpdateCalls()[0].Req
	assert.Equal(t, "New title", req.Title)
	assert.Equal(t, "Old summary", req.Summary)
	assert.Equal(t, "Old content", req.Content)
	assert.Contains(t, out.String(), "version 4")
}

func TestCli_runArticleStatus(t *testing.T) {
	articles := &repository.ArticlesMock{
		ChangeStatusFunc: func(ctx context.Context, id string, status models.ArticleStatus) (models.Article, error) {
			return models.Article{ID: id, Title: "Big news", Status: status}, nil
		},
	}

	c, out := newTestCli(t, signedIn("e1", models.RoleEditor), &repository.Set{Articles: articles})
	require.NoError(t, c.runArticleStatus(context.Background(), "a1", models.ArticlePublished))
	assert.Contains(t, out.String(), "Big news is now published")

	err := c.runArticleStatus(context.Background(), "a1", "gone")
	require.Error(t, err)
	assert.Len(t, articles.ChangeStatusCalls(), 1)
}

func TestCli_runArticleShare(t *testing.T) {
	articles := &repository.ArticlesMock{
		ShareMetaFunc: func(ctx context.Context, id string) (models.ShareMeta, error) {
			return models.ShareMeta{Title: "Big news", URL: "https://news.example/articles/big-news", SiteName: "Example", Type: "article"}, nil
		},
	}

	c, out := newTestCli(t, signedOut(), &repository.Set{Articles: articles})
	require.NoError(t, c.runArticleShare(context.Background(), "a1"))
	assertContainsAll(t, out.String(), "og:title        Big news", "og:url          https://news.example/articles/big-news")
	assert.NotContains(t, out.String(), "og:image")
}
