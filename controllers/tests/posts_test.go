package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postPayload struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
}

func TestPostEndpoints(t *testing.T) {
	router := newTestRouter()

	t.Run("Create post", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/posts", gin.H{
			"userId":   "user-1",
			"username": "ana123",
			"content":  "hola mundo",
			"location": "Zaragoza",
		})
		require.Equal(t, http.StatusCreated, w.Code, "body was: %s", w.Body.String())

		var resp struct {
			Item postPayload `json:"item"`
		}
		decode(t, w, &resp)
		assert.NotEmpty(t, resp.Item.ID)
		assert.Equal(t, "ana123", resp.Item.Username)
	})

	t.Run("Missing content is 400", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/posts", gin.H{
			"userId":   "user-1",
			"username": "ana123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Feed is newest first", func(t *testing.T) {
		for _, content := range []string{"segundo", "tercero"} {
			w := perform(t, router, http.MethodPost, "/posts", gin.H{
				"userId":   "user-1",
				"username": "ana123",
				"content":  content,
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := perform(t, router, http.MethodGet, "/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []postPayload `json:"items"`
		}
		decode(t, w, &resp)
		require.Len(t, resp.Items, 3)
		assert.Equal(t, "tercero", resp.Items[0].Content)
		assert.Equal(t, "segundo", resp.Items[1].Content)
		assert.Equal(t, "hola mundo", resp.Items[2].Content)
	})

	t.Run("Delete post", func(t *testing.T) {
		w := perform(t, router, http.MethodGet, "/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []postPayload `json:"items"`
		}
		decode(t, w, &resp)
		require.NotEmpty(t, resp.Items)

		target := resp.Items[0].ID
		w = perform(t, router, http.MethodDelete, "/posts/"+target, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = perform(t, router, http.MethodDelete, "/posts/"+target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = perform(t, router, http.MethodGet, "/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &resp)
		assert.Len(t, resp.Items, 2)
	})
}
