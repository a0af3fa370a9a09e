package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/growth"
)

const tierTablePath = "../../configs/tiers.json"

func defaults() format.Options {
	return format.DefaultOptions()
}

func loadTable(t *testing.T) *growth.Table {
	t.Helper()
	table, err := growth.LoadTable(tierTablePath)
	require.NoError(t, err)
	return table
}

// tierRouter mounts the tier handlers the way the server does so path
// parameters resolve.
func tierRouter(svc TierService) http.Handler {
	f := format.Default()
	r := chi.NewRouter()
	r.Get("/tiers", HandleListTiers(svc, f, defaults()))
	r.Post("/tiers/{tier}/cost", HandleTierCost(svc, f, defaults()))
	r.Post("/tiers/{tier}/max", HandleTierMax(svc))
	r.Post("/tiers/{tier}/buy-max", HandleTierBuyMax(svc, f, defaults()))
	r.Post("/tiers/{tier}/reset", HandleTierReset(svc))
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
