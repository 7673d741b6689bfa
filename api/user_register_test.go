package api

import (
	"net/http"
	"strings"
	"testing"

	"bitwise74/dating-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegister(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/register",
		`{"email":"bob@example.com","password":"hunter2","username":"bob"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "User registered successfully!", decode(t, w)["message"])
}

func TestUserRegisterStoresHashNotPlaintext(t *testing.T) {
	a := newTestAPI(t)

	user := register(t, a, "bob@example.com", "hunter2", "bob")

	assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
	assert.NotContains(t, user.PasswordHash, "hunter2")
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "bob@example.com", "hunter2", "bob")

	w := doJSON(t, a, http.MethodPost, "/register",
		`{"email":"bob@example.com","password":"other","username":"bobby"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, a.DB.Model(model.User{}).Where("email = ?", "bob@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRegisterMissingFields(t *testing.T) {
	a := newTestAPI(t)

	cases := []string{
		`{"password":"hunter2","username":"bob"}`,
		`{"email":"bob@example.com","username":"bob"}`,
		`{"email":"bob@example.com","password":"hunter2"}`,
		`{}`,
	}

	for _, body := range cases {
		w := doJSON(t, a, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}
