package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "дом не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"дом не найден"}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "Anna", p.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna","role":"admin"}`))
		var p payload
		assert.Error(t, DecodeJSON(req, &p))
	})
}

func TestPathInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/houses/12", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "12"})

	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	req = mux.SetURLVars(req, map[string]string{"id": "-1"})
	_, err = PathInt64(req, "id")
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Email  string `validate:"required,email"`
		Guests int    `validate:"min=1,max=20"`
	}

	assert.NoError(t, ValidateStruct(request{Email: "a@b.co", Guests: 2}))

	err := ValidateStruct(request{Email: "nope", Guests: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email(email)")
	assert.Contains(t, err.Error(), "Guests(min)")
}
