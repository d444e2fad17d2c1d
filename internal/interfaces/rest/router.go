package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/internal/interfaces/middleware"
)

// NewRouter builds the admin HTTP API
func NewRouter(svcMgr *services.ServiceManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS())

	status := NewStatusHandler(svcMgr)
	auth := NewAuthHandler(svcMgr)
	content := NewContentHandler(svcMgr)
	stats := NewStatsHandler(svcMgr)

	r.GET("/", status.Status)
	r.GET("/status", status.Status)
	r.GET("/health", status.Health)

	api := r.Group("/api")
	{
		api.GET("/status", status.Status)
		api.POST("/auth/login", auth.Login)

		// articles are readable without auth so the bot frontends can
		// embed them
		api.GET("/articles", content.ListArticles)
		api.GET("/articles/:id", content.GetArticle)
		api.GET("/nutritionists", content.ListNutritionists)

		protected := api.Group("", middleware.RequireAuth())
		{
			protected.POST("/articles", content.CreateArticle)
			protected.PUT("/articles/:id", content.UpdateArticle)
			protected.DELETE("/articles/:id", content.DeleteArticle)

			protected.POST("/nutritionists", content.CreateNutritionist)
			protected.DELETE("/nutritionists/:id", content.DeleteNutritionist)

			protected.GET("/stats/usage", stats.Usage)
		}
	}

	return r
}
