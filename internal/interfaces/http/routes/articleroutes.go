package routes

import (
	"github.com/gin-gonic/gin"

	articlehandlers "github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/article"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/middleware"
)

type ArticleRouteConfig struct {
	ArticleHandler *articlehandlers.ArticleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupArticleRoutes(engine *gin.Engine, config *ArticleRouteConfig) {
	articles := engine.Group("/articles")
	articles.Use(config.AuthMiddleware.RequireAuth())
	{
		articles.POST("", config.ArticleHandler.CreateArticle)
		articles.GET("", config.ArticleHandler.ListArticles)

		// Publication state changes (must come BEFORE /:id to avoid conflicts)
		articles.POST("/:id/publish", config.ArticleHandler.PublishArticle)
		articles.POST("/:id/unpublish", config.ArticleHandler.UnpublishArticle)

		articles.GET("/:id", config.ArticleHandler.GetArticle)
		articles.PUT("/:id", config.ArticleHandler.UpdateArticle)
		articles.DELETE("/:id", config.ArticleHandler.DeleteArticle)
	}
}
