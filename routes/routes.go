package routes

import (
	"Playko/controllers"
	"Playko/services"
	"Playko/services/redis"
	"Playko/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires the Postgres-backed store into the services and
// registers every API route. redisClient may be nil; feed caching and
// presence overlays are then skipped.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	SetupRoutesWithStore(router, store.NewGormStore(db), redisClient)
}

// SetupRoutesWithStore does the same wiring on an arbitrary record store.
// The test suites call it with the in-memory store.
func SetupRoutesWithStore(router *gin.Engine, st *store.Store, redisClient *redis.RedisClient) {
	identity := services.NewIdentityService(st.Users, redisClient)
	social := services.NewSocialService(st.Friends, redisClient)
	feed := services.NewFeedService(st.Posts, redisClient)
	games := services.NewGameLogService(st.Games)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/health", controllers.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register(identity))

		auth.POST("/login", controllers.Login(identity))
	}

	api.GET("/users", controllers.GetAllUsers(identity))

	api.GET("/users/:id", controllers.GetUserPublicInfo(identity))

	api.PUT("/users/:id", controllers.UpdateUserInfo(identity))

	api.GET("/posts", controllers.GetAllPosts(feed))

	api.POST("/posts", controllers.CreatePost(feed))

	api.DELETE("/posts/:id", controllers.DeletePost(feed))

	api.GET("/friends", controllers.ListFriends(social))

	api.POST("/friends", controllers.AddFriend(social))

	api.GET("/games", controllers.ListGames(games))

	api.POST("/games", controllers.AddGame(games))
}
