package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type friendPayload struct {
	ID            string `json:"id"`
	OwnerUserID   string `json:"ownerUserId"`
	FriendUserID  string `json:"friendUserId"`
	FriendName    string `json:"friendName"`
	AvatarResName string `json:"avatarResName"`
	IsOnline      bool   `json:"isOnline"`
}

func TestFriendEndpoints(t *testing.T) {
	router := newTestRouter()

	t.Run("Add friend with default avatar", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/friends", gin.H{
			"ownerUserId":  "owner-1",
			"friendUserId": "friend-1",
			"friendName":   "Nico",
		})
		require.Equal(t, http.StatusCreated, w.Code, "body was: %s", w.Body.String())

		var resp struct {
			Item friendPayload `json:"item"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "avatar_default", resp.Item.AvatarResName)
	})

	t.Run("Duplicate edge is 409 with one edge listed", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/friends", gin.H{
			"ownerUserId":  "owner-1",
			"friendUserId": "friend-1",
			"friendName":   "Nico",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = perform(t, router, http.MethodGet, "/friends?ownerUserId=owner-1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []friendPayload `json:"items"`
		}
		decode(t, w, &resp)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("Friend without account is accepted", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/friends", gin.H{
			"ownerUserId": "owner-1",
			"friendName":  "Primo sin cuenta",
			"isOnline":    true,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Item friendPayload `json:"item"`
		}
		decode(t, w, &resp)
		assert.Empty(t, resp.Item.FriendUserID)
		assert.True(t, resp.Item.IsOnline)
	})

	t.Run("Adding yourself is 400", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/friends", gin.H{
			"ownerUserId":  "owner-1",
			"friendUserId": "owner-1",
			"friendName":   "Yo mismo",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "body was: %s", w.Body.String())
	})

	t.Run("Missing friendName is 400", func(t *testing.T) {
		w := perform(t, router, http.MethodPost, "/friends", gin.H{"ownerUserId": "owner-1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List without owner is 400", func(t *testing.T) {
		w := perform(t, router, http.MethodGet, "/friends", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
