package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city":"Istanbul","country":"Turkey","query":"1.2.3.4"}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, time.Second)
	loc := r.Resolve(context.Background())

	assert.Equal(t, "Istanbul", loc.City)
	assert.Equal(t, "Turkey", loc.Country)
}

func TestResolve_UpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	r := NewResolver(srv.URL, time.Second)
	loc := r.Resolve(context.Background())

	assert.Equal(t, Fallback, loc)
}

func TestResolve_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, time.Second)
	assert.Equal(t, Fallback, r.Resolve(context.Background()))
}

func TestResolve_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, time.Second)
	assert.Equal(t, Fallback, r.Resolve(context.Background()))
}

func TestResolve_MissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, time.Second)
	assert.Equal(t, Fallback, r.Resolve(context.Background()))
}

func TestResolve_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, 10*time.Millisecond)
	assert.Equal(t, Fallback, r.Resolve(context.Background()))
}
