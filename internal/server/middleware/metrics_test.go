package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	requests []observedRequest
	mu       sync.Mutex
}

func (o *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, observedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.Get("/api/v1/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Post("/api/v1/articles", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/articles/123", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/articles/456", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/articles", nil),
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, observer.requests, 4)
	assert.Equal(t, observedRequest{http.MethodGet, "/api/v1/articles/{id}", http.StatusNotFound}, observer.requests[0])
	assert.Equal(t, observer.requests[0], observer.requests[1], "ids are folded into the route pattern")
	assert.Equal(t, observedRequest{http.MethodPost, "/api/v1/articles", http.StatusCreated}, observer.requests[2])
	assert.Equal(t, http.StatusNotFound, observer.requests[3].status)
}
