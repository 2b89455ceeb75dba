package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/internal/services"
)

type RecommendationHandler struct {
	*BaseHandler
	feedService services.FeedService
}

func NewRecommendationHandler(base *BaseHandler, feedService services.FeedService) *RecommendationHandler {
	return &RecommendationHandler{BaseHandler: base, feedService: feedService}
}

func (h *RecommendationHandler) RegisterRoutes(r *gin.RouterGroup) {
	recs := r.Group("/recommendations")
	recs.Use(middleware.AuthMiddleware())
	{
		recs.GET("", h.GetRecommendations)
	}
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	feed, err := h.feedService.BuildFeed(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates": feed,
		"total":      len(feed),
	})
}
