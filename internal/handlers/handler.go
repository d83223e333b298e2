package handlers

import (
	"net/http"

	"postboard/internal/logger"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API index and health
	router.GET("/", h.index)
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)
	h.registerUserRoutes(router)

	// Live post feed over WebSocket (read-only, same visibility as GET /posts)
	router.GET("/ws", h.wsFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)

		posts.POST("", h.identityMiddleware, h.createPost)
		posts.PUT("/:id", h.identityMiddleware, h.updatePost)
		posts.DELETE("/:id", h.identityMiddleware, h.deletePost)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/me", h.identityMiddleware, h.currentUser)
		users.GET("/:id", h.getUser)

		users.PUT("/me", h.identityMiddleware, h.updateProfile)
		users.POST("/password", h.identityMiddleware, h.changePassword)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      API index
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "postboard: CRUD API for posts with user authentication",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth": gin.H{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
			},
			"posts": gin.H{
				"list":   "GET /posts (optional page, limit, author, search)",
				"get":    "GET /posts/:id",
				"create": "POST /posts (bearer token)",
				"update": "PUT /posts/:id (bearer token, owner only)",
				"delete": "DELETE /posts/:id (bearer token, owner only)",
			},
			"users": gin.H{
				"list":     "GET /users",
				"get":      "GET /users/:id",
				"me":       "GET /users/me (bearer token)",
				"update":   "PUT /users/me (bearer token)",
				"password": "POST /users/password (bearer token)",
			},
			"feed": "GET /ws (WebSocket, optional interval)",
		},
	})
}
