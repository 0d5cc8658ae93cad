package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/unipress/internal/client/iocli"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/client/storage"
	"github.com/iudanet/unipress/internal/models"
)

// testOutput собирает весь вывод команды
type testOutput struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (o *testOutput) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.WriteString(s)
}

func (o *testOutput) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

// newTestIO мок ввода-вывода: ответы на запросы берутся из inputs по порядку
func newTestIO(inputs ...string) (*iocli.IOMock, *testOutput) {
	out := &testOutput{}
	var mu sync.Mutex
	next := func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if len(inputs) == 0 {
			return "", io.EOF
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}

	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.write(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.write(fmt.Sprintf(format, a...))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
		WriteFunc: func(p []byte) (int, error) {
			out.write(string(p))
			return len(p), nil
		},
	}
	return mock, out
}

// signedIn сессия пользователя userID с ролью role
func signedIn(userID string, role models.Role) *SessionsMock {
	s := session.Session{UserID: userID, Username: "user-" + userID, Role: role, AccessToken: "token"}
	return &SessionsMock{
		CurrentFunc: func() (session.Session, bool) { return s, true },
		TokenFunc:   func(ctx context.Context) (string, error) { return s.AccessToken, nil },
		UserIDFunc:  func() string { return userID },
	}
}

// signedOut читатель без сессии
func signedOut() *SessionsMock {
	return &SessionsMock{
		CurrentFunc: func() (session.Session, bool) { return session.Session{}, false },
		UserIDFunc:  func() string { return "" },
	}
}

// memoryMetadata метаданные клиента в памяти
func memoryMetadata() *storage.MetadataStorageMock {
	var mu sync.Mutex
	drafts := map[string]string{}
	return &storage.MetadataStorageMock{
		AnonymousIDFunc: func(ctx context.Context) (string, error) {
			return "anon-device", nil
		},
		SaveDraftFunc: func(ctx context.Context, articleID, text string) error {
			mu.Lock()
			defer mu.Unlock()
			if text == "" {
				delete(drafts, articleID)
				return nil
			}
			drafts[articleID] = text
			return nil
		},
		GetDraftFunc: func(ctx context.Context, articleID string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return drafts[articleID], nil
		},
	}
}

func newTestCli(t *testing.T, sessions Sessions, repos *repository.Set, inputs ...string) (*Cli, *testOutput) {
	t.Helper()
	mockIO, out := newTestIO(inputs...)
	return New(mockIO, sessions, repos, memoryMetadata(), nil, nil), out
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func assertContainsAll(t *testing.T, s string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		assert.Contains(t, s, p)
	}
}
