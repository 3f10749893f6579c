package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Playko/routes"
	"Playko/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the full route table on top of a fresh in-memory
// record store, without Redis. Every test file drives the API through it the
// same way a client would.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutesWithStore(router, store.NewMemoryStore(), nil)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), "body was: %s", w.Body.String())
}

func registrationBody(username, email, phone string) gin.H {
	return gin.H{
		"nombre":   "Ana",
		"apellido": "García",
		"edad":     20,
		"email":    email,
		"phone":    phone,
		"username": username,
		"password": "Secret1!",
	}
}

// registerUser registers through the API and returns the new user's id.
func registerUser(t *testing.T, router *gin.Engine, username, email, phone string) string {
	t.Helper()
	w := perform(t, router, http.MethodPost, "/auth/register", registrationBody(username, email, phone))
	require.Equal(t, http.StatusCreated, w.Code, "body was: %s", w.Body.String())

	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.User.ID)
	return resp.User.ID
}
