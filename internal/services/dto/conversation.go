package dto

import "cofoundr_backend/internal/models"

type PostMessageRequest struct {
	Body string `json:"body" binding:"required" validate:"required,min=1,max=1000"`
}

type MessageList struct {
	Messages []models.Message `json:"messages"`
	Total    int              `json:"total"`
}
