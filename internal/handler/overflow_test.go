package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/hypernum/internal/format"
)

func TestHandleOverflow(t *testing.T) {
	h := HandleOverflow(format.Default(), defaults())

	t.Run("tempers past start", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/overflow", OverflowRequest{Value: "e1e80", Start: "e1e75", Power: 0.55})
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decode[OverflowResponse](t, rec)
		assert.True(t, resp.Tempered)
		assert.Equal(t, 2, resp.Value.Layer())
		assert.InDelta(t, 77.75, resp.Value.Mag(), 1e-9)
		assert.InEpsilon(t, 177.827941, resp.Ratio.ToFloat(), 1e-6)
		assert.Equal(t, "rooted by 177.83", resp.Description)
		assert.True(t, strings.HasPrefix(resp.Formatted, "e5.623e77"), resp.Formatted)
	})

	t.Run("power above one raises", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/overflow", OverflowRequest{Value: "1e20", Start: "1e10", Power: 2})
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decode[OverflowResponse](t, rec)
		assert.True(t, resp.Tempered)
		assert.InDelta(t, 40, resp.Value.Mag(), 1e-9)
		assert.Equal(t, "raised by 2.00", resp.Description)
	})

	t.Run("below start is untouched", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/overflow", OverflowRequest{Value: "100", Start: "1e10", Power: 0.5})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"value":"100","formatted":"100.00","tempered":false,"ratio":"1"}`, rec.Body.String())
	})

	t.Run("meta lifts twice", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/overflow", OverflowRequest{Value: "eee10", Start: "ee100", Power: 0.5, Meta: 2})
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decode[OverflowResponse](t, rec)
		assert.Equal(t, 2, resp.Value.Layer())
		assert.InEpsilon(t, 1e6, resp.Value.Mag(), 1e-9)
	})
}

func TestHandleOverflow_Invalid(t *testing.T) {
	h := HandleOverflow(format.Default(), defaults())

	tests := []struct {
		name      string
		req       OverflowRequest
		wantField string
	}{
		{name: "zero power", req: OverflowRequest{Value: "1e20", Start: "1e10"}, wantField: "power"},
		{name: "negative power", req: OverflowRequest{Value: "1e20", Start: "1e10", Power: -1}, wantField: "power"},
		{name: "meta too deep", req: OverflowRequest{Value: "1e20", Start: "1e10", Power: 0.5, Meta: 11}, wantField: "meta"},
		{name: "missing start", req: OverflowRequest{Value: "1e20", Power: 0.5}, wantField: "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/overflow", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[ValidationErrorResponse](t, rec).Fields, tt.wantField)
		})
	}
}
