package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/internal/services"
	"cofoundr_backend/internal/services/dto"
)

type MessageHandler struct {
	*BaseHandler
	conversationService services.ConversationService
}

func NewMessageHandler(base *BaseHandler, conversationService services.ConversationService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, conversationService: conversationService}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/matches/:matchId/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.ListMessages)
		messages.POST("", h.PostMessage)
		messages.POST("/read", h.MarkRead)
	}
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	before, err := ParseQueryTime(c, "before")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	list, err := h.conversationService.ListMessages(userID, c.Param("matchId"), services.ListMessagesOptions{
		Limit:  ParseQueryInt(c, "limit", 0),
		Before: before,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.conversationService.PostMessage(userID, c.Param("matchId"), req.Body)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.conversationService.MarkRead(userID, c.Param("matchId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked read"})
}
