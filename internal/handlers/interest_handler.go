package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/internal/services"
	"cofoundr_backend/internal/services/dto"
)

type InterestHandler struct {
	*BaseHandler
	interestService services.InterestService
}

func NewInterestHandler(base *BaseHandler, interestService services.InterestService) *InterestHandler {
	return &InterestHandler{BaseHandler: base, interestService: interestService}
}

func (h *InterestHandler) RegisterRoutes(r *gin.RouterGroup) {
	likes := r.Group("/likes")
	likes.Use(middleware.AuthMiddleware())
	{
		likes.POST("", h.ExpressInterest)
	}
}

// ExpressInterest records a like and reports whether it completed a mutual
// pair. 201 on a match, 200 on a plain like; semantic failures map to 400
// (self-like), 404 (unknown target) and 409 (repeat like).
func (h *InterestHandler) ExpressInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ExpressInterestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.interestService.ExpressInterest(userID, req.ToUserID, req.Message)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.IsMatch {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
