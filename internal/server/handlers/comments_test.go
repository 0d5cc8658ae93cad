package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage/sqlite"
	"github.com/iudanet/unipress/pkg/api"
)

func newCommentFixture(t *testing.T) (*CommentHandler, *sqlite.Storage, *PublisherMock) {
	t.Helper()

	s := setupTestStorage(t)
	pub := newPublisher()
	return NewCommentHandler(setupTestLogger(), s, s, s, pub), s, pub
}

func postComment(t *testing.T, h *CommentHandler, articleID string, req api.CommentRequest, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	r := newRequest(t, http.MethodPost, "/api/v1/articles/"+articleID+"/comments", req, user, map[string]string{"id": articleID})
	w := httptest.NewRecorder()
	h.Create(w, r)
	return w
}

func TestCommentHandler_Create(t *testing.T) {
	handler, s, pub := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	reader := createUser(t, s, "reader", models.RoleReader)
	article := createArticle(t, s, author, models.ArticlePublished)

	w := postComment(t, handler, article.ID, api.CommentRequest{Content: "  Hello  "}, reader)
	require.Equal(t, http.StatusCreated, w.Code)

	c := decodeData[models.Comment](t, w)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Hello", c.Content)
	assert.Equal(t, reader.ID, c.AuthorID)
	assert.Equal(t, "reader", c.AuthorName)
	assert.Equal(t, article.ID, c.ArticleID)

	events := publishedEvents(pub)
	require.Len(t, events, 2)

	assert.Equal(t, api.TableComments, events[0].Table)
	assert.Equal(t, api.EventInsert, events[0].EventType)
	assert.Equal(t, reader.ID, events[0].Actor)

	// счетчик комментариев рассылается без автора события
	assert.Equal(t, api.TableArticles, events[1].Table)
	assert.Equal(t, api.EventUpdate, events[1].EventType)
	assert.Empty(t, events[1].Actor)
	var updated models.Article
	require.NoError(t, json.Unmarshal(events[1].New, &updated))
	assert.Equal(t, 1, updated.CommentCount)
}

func TestCommentHandler_Reply(t *testing.T) {
	handler, s, _ := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	reader := createUser(t, s, "reader", models.RoleReader)
	article := createArticle(t, s, author, models.ArticlePublished)
	another := createArticle(t, s, author, models.ArticlePublished)

	w := postComment(t, handler, article.ID, api.CommentRequest{Content: "Root"}, reader)
	require.Equal(t, http.StatusCreated, w.Code)
	root := decodeData[models.Comment](t, w)

	w = postComment(t, handler, article.ID, api.CommentRequest{Content: "Reply", ParentID: root.ID}, author)
	require.Equal(t, http.StatusCreated, w.Code)
	reply := decodeData[models.Comment](t, w)
	assert.Equal(t, root.ID, reply.ParentID)

	w = postComment(t, handler, article.ID, api.CommentRequest{Content: "Reply", ParentID: "missing"}, author)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postComment(t, handler, another.ID, api.CommentRequest{Content: "Reply", ParentID: root.ID}, author)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_Create_Rejected(t *testing.T) {
	handler, s, pub := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	reader := createUser(t, s, "reader", models.RoleReader)
	published := createArticle(t, s, author, models.ArticlePublished)
	draft := createArticle(t, s, author, models.ArticleDraft)

	tests := []struct {
		name      string
		articleID string
		content   string
		user      *models.User
		wantCode  int
	}{
		{"anonymous", published.ID, "Hello", nil, http.StatusUnauthorized},
		{"empty content", published.ID, "   ", reader, http.StatusBadRequest},
		{"draft article", draft.ID, "Hello", author, http.StatusForbidden},
		{"missing article", "missing", "Hello", reader, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postComment(t, handler, tt.articleID, api.CommentRequest{Content: tt.content}, tt.user)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
	assert.Empty(t, pub.PublishCalls())
}

func TestCommentHandler_Create_CommentsDisabled(t *testing.T) {
	handler, s, _ := newCommentFixture(t)
	ctx := context.Background()
	author := createUser(t, s, "author", models.RoleAuthor)
	article := createArticle(t, s, author, models.ArticlePublished)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	settings.CommentsEnabled = false
	_, err = s.UpdateSettings(ctx, settings)
	require.NoError(t, err)

	w := postComment(t, handler, article.ID, api.CommentRequest{Content: "Hello"}, author)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, api.CodeForbidden, errorCode(t, w))
}

func TestCommentHandler_List(t *testing.T) {
	handler, s, _ := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	article := createArticle(t, s, author, models.ArticlePublished)
	draft := createArticle(t, s, author, models.ArticleDraft)

	for _, text := range []string{"first", "second"} {
		w := postComment(t, handler, article.ID, api.CommentRequest{Content: text}, author)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := newRequest(t, http.MethodGet, "/", nil, nil, map[string]string{"id": article.ID})
	w := httptest.NewRecorder()
	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	comments := decodeData[[]models.Comment](t, w)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)

	req = newRequest(t, http.MethodGet, "/", nil, nil, map[string]string{"id": draft.ID})
	w = httptest.NewRecorder()
	handler.List(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	handler, s, pub := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	reader := createUser(t, s, "reader", models.RoleReader)
	stranger := createUser(t, s, "stranger", models.RoleReader)
	editor := createUser(t, s, "editor", models.RoleEditor)
	article := createArticle(t, s, author, models.ArticlePublished)

	w := postComment(t, handler, article.ID, api.CommentRequest{Content: "Root"}, reader)
	require.Equal(t, http.StatusCreated, w.Code)
	root := decodeData[models.Comment](t, w)
	w = postComment(t, handler, article.ID, api.CommentRequest{Content: "Reply", ParentID: root.ID}, author)
	require.Equal(t, http.StatusCreated, w.Code)

	del := func(u *models.User, id string) *httptest.ResponseRecorder {
		req := newRequest(t, http.MethodDelete, "/api/v1/comments/"+id, nil, u, map[string]string{"id": id})
		w := httptest.NewRecorder()
		handler.Delete(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, del(nil, root.ID).Code)
	assert.Equal(t, http.StatusForbidden, del(stranger, root.ID).Code)
	assert.Equal(t, http.StatusNotFound, del(editor, "missing").Code)

	before := len(pub.PublishCalls())
	require.Equal(t, http.StatusOK, del(reader, root.ID).Code)

	events := publishedEvents(pub)[before:]
	require.Len(t, events, 3, "root, reply and the article counter")
	assert.Equal(t, api.EventDelete, events[0].EventType)
	assert.Equal(t, api.EventDelete, events[1].EventType)
	assert.Equal(t, api.TableArticles, events[2].Table)

	var deletedRoot models.Comment
	require.NoError(t, json.Unmarshal(events[0].Old, &deletedRoot))
	assert.Equal(t, root.ID, deletedRoot.ID)

	var updated models.Article
	require.NoError(t, json.Unmarshal(events[2].New, &updated))
	assert.Equal(t, 0, updated.CommentCount)
}

func TestCommentHandler_Delete_ByEditor(t *testing.T) {
	handler, s, _ := newCommentFixture(t)
	author := createUser(t, s, "author", models.RoleAuthor)
	editor := createUser(t, s, "editor", models.RoleEditor)
	article := createArticle(t, s, author, models.ArticlePublished)

	w := postComment(t, handler, article.ID, api.CommentRequest{Content: "Spam"}, author)
	require.Equal(t, http.StatusCreated, w.Code)
	c := decodeData[models.Comment](t, w)

	req := newRequest(t, http.MethodDelete, "/", nil, editor, map[string]string{"id": c.ID})
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
