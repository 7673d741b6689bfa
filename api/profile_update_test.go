package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitwise74/dating-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdatePartial(t *testing.T) {
	a := newTestAPI(t)
	user := register(t, a, "bob@example.com", "hunter2", "bob")

	w := doJSON(t, a, http.MethodPost, fmt.Sprintf("/update-profile/%d", user.ID),
		`{"age":25,"gender":"m","location":"Riga"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Only bio changes, everything else keeps its value
	w = doJSON(t, a, http.MethodPost, fmt.Sprintf("/update-profile/%d", user.ID), `{"bio":"x"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.User
	require.NoError(t, a.DB.First(&got, user.ID).Error)

	require.NotNil(t, got.Age)
	assert.Equal(t, 25, *got.Age)
	require.NotNil(t, got.Gender)
	assert.Equal(t, "m", *got.Gender)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Riga", *got.Location)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "x", *got.Bio)
}

func TestProfileUpdateIdempotent(t *testing.T) {
	a := newTestAPI(t)
	user := register(t, a, "bob@example.com", "hunter2", "bob")

	for i := 0; i < 2; i++ {
		w := doJSON(t, a, http.MethodPost, fmt.Sprintf("/update-profile/%d", user.ID), `{"age":30}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var got model.User
	require.NoError(t, a.DB.First(&got, user.ID).Error)

	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.Bio)
	assert.Nil(t, got.Location)
}

func TestProfileUpdateUnknownUser(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/update-profile/999", `{"age":30}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodPost, "/update-profile/abc", `{"age":30}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileFetch(t *testing.T) {
	a := newTestAPI(t)
	user := register(t, a, "bob@example.com", "hunter2", "bob")

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/profile/%d", user.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "bob", resp["username"])
	assert.Equal(t, "bob@example.com", resp["email"])

	// The hash stays server-side
	assert.NotContains(t, resp, "password")
	assert.NotContains(t, w.Body.String(), "argon2id")
}

func TestProfileFetchUnknownUser(t *testing.T) {
	a := newTestAPI(t)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
