package controllers

import (
	"net/http"

	"Playko/services"

	"github.com/gin-gonic/gin"
)

// @Summary Get the global feed
// @Description Returns every post, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} object{items=[]postgres.Post}
// @Failure 500 {object} object{error=string}
// @Router /posts [get]
func GetAllPosts(feed *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := feed.ListPosts()
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": posts})
	}
}

type createPostRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Username string `json:"username" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Location string `json:"location"`
	Link     string `json:"link"`
	ImageURI string `json:"imageUri"`
}

// @Summary Create a post
// @Description Adds a post to the global feed; username is the display snapshot stored with it
// @Tags posts
// @Accept json
// @Produce json
// @Param body body controllers.createPostRequest true "Post fields"
// @Success 201 {object} object{item=postgres.Post}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /posts [post]
func CreatePost(feed *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post, err := feed.CreatePost(services.CreatePostInput{
			UserID:   req.UserID,
			Username: req.Username,
			Content:  req.Content,
			Location: req.Location,
			Link:     req.Link,
			ImageURI: req.ImageURI,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": post})
	}
}

// @Summary Delete a post
// @Description Removes a post from the feed by id
// @Tags posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /posts/{id} [delete]
func DeletePost(feed *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := feed.DeletePost(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
	}
}
