package cli

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func TestRealtimeURL(t *testing.T) {
	tests := []struct {
		server  string
		want    string
		wantErr bool
	}{
		{server: "http://localhost:8080", want: "ws://localhost:8080/api/v1/realtime"},
		{server: "https://news.example/", want: "wss://news.example/api/v1/realtime"},
		{server: "https://news.example/portal", want: "wss://news.example/portal/api/v1/realtime"},
		{server: "ftp://news.example", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.server, func(t *testing.T) {
			got, err := RealtimeURL(tt.server)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCli_runWatch(t *testing.T) {
	comments := &repository.CommentsMock{
		ListFunc: func(ctx context.Context, articleID string) ([]models.Comment, error) {
			return nil, nil
		},
	}
	reactions := &repository.ReactionsMock{
		SummaryFunc: func(ctx context.Context, articleID string) ([]models.ReactionSummary, error) {
			return nil, nil
		},
	}

	c, out := newTestCli(t, signedIn("u1", models.RoleReader), &repository.Set{Comments: comments, Reactions: reactions})
	transport := realtime.NewMemoryTransport()
	c.transport = func(ctx context.Context) realtime.Transport { return transport }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.runWatch(ctx, "a1")
	}()

	row, err := json.Marshal(models.Comment{ID: "c1", ArticleID: "a1", AuthorName: "bob", Content: "Live comment", Version: 1})
	require.NoError(t, err)
	ev := api.ChangeEvent{
		Topic:     realtime.CommentsScope("a1").Topic(),
		EventType: api.EventInsert,
		Table:     api.TableComments,
		Actor:     "u2",
		New:       row,
	}

	// канал открывается асинхронно
	require.Eventually(t, func() bool {
		return transport.Publish(ev)
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return containsAll(out.String(), "new comment", "- Live comment")
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Contains(t, out.String(), "Stopped watching.")
}

func TestCli_runWatch_NoTransport(t *testing.T) {
	c, _ := newTestCli(t, signedOut(), &repository.Set{})
	require.Error(t, c.runWatch(context.Background(), "a1"))
}
