package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"petgame/pkg/middlewarex"
)

func TestCORS(t *testing.T) {
	rq := require.New(t)

	var handlerCalled bool

	handler := middlewarex.CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pet", http.NoBody))

	rq.True(handlerCalled)
	rq.Equal(http.StatusTeapot, rec.Code)
	rq.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	rq.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSPreflight(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called for preflight")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/pet", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	rq.Empty(rec.Body.String())
}
