package controllers

import (
	"net/http"

	"Playko/services"

	"github.com/gin-gonic/gin"
)

// @Summary Get a list of a user's friends
// @Description Returns every friend edge owned by the given user
// @Tags friends
// @Produce json
// @Param ownerUserId query string true "Id of the owning user"
// @Success 200 {object} object{items=[]postgres.Friend}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /friends [get]
func ListFriends(social *services.SocialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		friends, err := social.ListFriends(c.Query("ownerUserId"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": friends})
	}
}

type addFriendRequest struct {
	OwnerUserID   string `json:"ownerUserId" binding:"required"`
	FriendUserID  string `json:"friendUserId"`
	FriendName    string `json:"friendName" binding:"required"`
	AvatarResName string `json:"avatarResName"`
	IsOnline      bool   `json:"isOnline"`
}

// @Summary Add a new friend
// @Description Adds a friend edge; friendUserId may be empty for friends without an account
// @Tags friends
// @Accept json
// @Produce json
// @Param body body controllers.addFriendRequest true "Friend fields"
// @Success 201 {object} object{item=postgres.Friend}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /friends [post]
func AddFriend(social *services.SocialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addFriendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		friend, err := social.AddFriend(services.AddFriendInput{
			OwnerUserID:   req.OwnerUserID,
			FriendUserID:  req.FriendUserID,
			FriendName:    req.FriendName,
			AvatarResName: req.AvatarResName,
			IsOnline:      req.IsOnline,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": friend})
	}
}
