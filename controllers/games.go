package controllers

import (
	"net/http"

	"Playko/services"

	"github.com/gin-gonic/gin"
)

// @Summary Get a user's played games
// @Description Returns the user's play records, newest-played first
// @Tags games
// @Produce json
// @Param userId query string true "Id of the user"
// @Success 200 {object} object{items=[]postgres.Game}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /games [get]
func ListGames(games *services.GameLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := games.ListGames(c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": records})
	}
}

type addGameRequest struct {
	UserID       string `json:"userId" binding:"required"`
	GameTitle    string `json:"gameTitle" binding:"required"`
	ImageResName string `json:"imageResName"`
}

// @Summary Record a played game
// @Description Adds a play record; the same title may be logged many times
// @Tags games
// @Accept json
// @Produce json
// @Param body body controllers.addGameRequest true "Game fields"
// @Success 201 {object} object{item=postgres.Game}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /games [post]
func AddGame(games *services.GameLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		game, err := games.AddGame(services.AddGameInput{
			UserID:       req.UserID,
			GameTitle:    req.GameTitle,
			ImageResName: req.ImageResName,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": game})
	}
}
