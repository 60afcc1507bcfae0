package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// NewTestBackend поднимает фейковый сервер платформы для тестов клиента.
// Маршруты регистрируются вызывающей стороной; сервер закрывается вместе с
// тестом.
func NewTestBackend(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}
