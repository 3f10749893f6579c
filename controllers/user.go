package controllers

import (
	"net/http"
	"strconv"

	"Playko/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Edad     int    `json:"edad" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Register a new account
// @Description Creates a user; username, email and phone must each be unused
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.registerRequest true "Registration fields"
// @Success 201 {object} object{user=postgres.User}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /auth/register [post]
func Register(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := identity.Register(services.RegisterInput{
			Nombre:   req.Nombre,
			Apellido: req.Apellido,
			Edad:     req.Edad,
			Email:    req.Email,
			Phone:    req.Phone,
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

type loginRequest struct {
	Field    string `json:"field" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Log in with username, email or phone
// @Description Matches the field against username, then email, then phone
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.loginRequest true "Identity field and password"
// @Success 200 {object} object{user=postgres.User}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/login [post]
func Login(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := identity.Login(req.Field, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// @Summary List all users
// @Description Returns users ordered by high score descending (leaderboard)
// @Tags users
// @Produce json
// @Param limit query int false "Maximum number of users to return"
// @Success 200 {object} object{items=[]postgres.User}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /users [get]
func GetAllUsers(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
				return
			}
			limit = parsed
		}

		users, err := identity.ListUsers(limit)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": users})
	}
}

// @Summary Get a single user
// @Description Returns the public info of one user by id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} object{user=postgres.User}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func GetUserPublicInfo(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := identity.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

type updateUserRequest struct {
	ProfilePhotoURL *string `json:"profilePhotoUrl"`
	HighScore       *int    `json:"highScore"`
	Level           *int    `json:"level"`
}

// @Summary Update a user's profile photo, score or level
// @Description Partial update: omitted fields are left untouched
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param body body controllers.updateUserRequest true "Fields to update"
// @Success 200 {object} object{user=postgres.User}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [put]
func UpdateUserInfo(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := identity.UpdateUser(c.Param("id"), services.UpdateUserInput{
			ProfilePhotoURL: req.ProfilePhotoURL,
			HighScore:       req.HighScore,
			Level:           req.Level,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
