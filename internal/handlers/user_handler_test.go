package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/careflow/homecare-api/internal/models"
)

func TestCreateUser(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"username":      "njones",
		"password_hash": "$2a$10$abcdefghijklmnopqrstuv",
		"role":          "carer",
		"display_name":  "Nia Jones",
	})
	is.Equal(w.Code, http.StatusCreated)

	body := decode[map[string]any](t, w)
	is.Equal(body["username"], "njones")
	is.Equal(body["role"], "carer")
	is.Equal(body["display_name"], "Nia Jones")
	is.True(body["id"].(float64) > 0)

	// the hash must never appear in a response, not even right after create
	_, leaked := body["password_hash"]
	is.True(!leaked)
	is.True(!strings.Contains(w.Body.String(), "$2a$10$"))
}

func TestCreateUserMissingFields(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"username": "njones",
	})
	is.Equal(w.Code, http.StatusBadRequest)
}

func TestGetUserRoundTrip(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	created := decode[map[string]any](t, doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"username":      "mpatel",
		"password_hash": "hash",
		"role":          "admin",
	}))
	id := int(created["id"].(float64))

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	is.Equal(w.Code, http.StatusOK)

	got := decode[map[string]any](t, w)
	is.Equal(got["username"], "mpatel")
	is.Equal(got["role"], "admin")
	is.Equal(got["display_name"], nil)
	_, leaked := got["password_hash"]
	is.True(!leaked)
}

func TestGetUserNotFound(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/users/9999", nil)
	is.Equal(w.Code, http.StatusNotFound)
}

func TestGetUserInvalidID(t *testing.T) {
	is := is.New(t)
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/users/abc", nil)
	is.Equal(w.Code, http.StatusBadRequest)
}

func TestListUsersOrderedByID(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	for _, name := range []string{"zara", "adam", "mike"} {
		u := models.User{Username: name, PasswordHash: "h", Role: "carer"}
		is.NoErr(db.Create(&u).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/users", nil)
	is.Equal(w.Code, http.StatusOK)

	users := decode[[]map[string]any](t, w)
	is.Equal(len(users), 3)
	is.Equal(users[0]["username"], "zara") // insertion order, id ascending
	is.Equal(users[2]["username"], "mike")
}

func TestUserImageUploadWithoutStorage(t *testing.T) {
	is := is.New(t)
	r, db := newTestServer(t)

	u := models.User{Username: "pchan", PasswordHash: "h", Role: "carer"}
	is.NoErr(db.Create(&u).Error)

	// server wired without an uploader: endpoint reports unavailable
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%d/image", u.ID), nil)
	is.Equal(w.Code, http.StatusServiceUnavailable)
}
