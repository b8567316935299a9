package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_LogsPanic(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: buffer}).
		With().
		Timestamp().
		Logger()

	ctx := logger.WithContext(context.Background())

	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("panicky handler")
	})

	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil).
		WithContext(ctx)

	requestLoggerMiddleware := RequestLogger(nil)

	router := chi.NewRouter()
	router.Handle("/", requestLoggerMiddleware(panicHandler))

	server := &http.Server{Addr: ":8080", Handler: router}
	server.Handler.ServeHTTP(rw, r)

	actual := buffer.String()

	assert.Contains(t, actual, "panic recovered")
	assert.Regexp(t, regexp.MustCompile("panic=.+panicky handler"), actual)
	assert.Regexp(t, regexp.MustCompile("stacktrace=.+"), actual)
	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}

func TestRequestLogger_LogsStartAndComplete(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: buffer}).
		With().
		Timestamp().
		Logger()

	ctx := logger.WithContext(context.Background())

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/airdrop/campaigns", nil).
		WithContext(ctx)

	router := chi.NewRouter()
	router.Handle("/v1/airdrop/campaigns", RequestLogger(nil)(okHandler))
	router.ServeHTTP(rw, r)

	actual := buffer.String()

	assert.Contains(t, actual, "request started")
	assert.Contains(t, actual, "request complete")
	assert.Contains(t, actual, "/v1/airdrop/campaigns")
}

func TestRequestLogger_SkipsMetrics(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: buffer}).
		With().
		Timestamp().
		Logger()

	ctx := logger.WithContext(context.Background())

	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil).
		WithContext(ctx)

	router := chi.NewRouter()
	router.Handle("/metrics", RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	router.ServeHTTP(rw, r)

	assert.Empty(t, buffer.String())
}
