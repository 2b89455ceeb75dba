package services

import (
	"strings"
	"time"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

const (
	defaultMessagePageSize = 50
	maxMessagePageSize     = 200
	maxMessageBodyLen      = 1000
)

// ListMessagesOptions are the caller-supplied paging knobs. Limit is clamped
// to the page-size bounds; Before, when set, restricts results to messages
// created strictly before that instant.
type ListMessagesOptions struct {
	Limit  int
	Before *time.Time
}

// ConversationService gates messaging on an active match between the two
// participants.
type ConversationService interface {
	// CanAccess reports whether the user participates in an active match
	// with that id. The error, when non-nil, is the same not-found shape
	// callers return to clients.
	CanAccess(userID, matchID string) (bool, error)
	PostMessage(userID, matchID, body string) (*models.Message, error)
	ListMessages(userID, matchID string, opts ListMessagesOptions) (*dto.MessageList, error)
	MarkRead(userID, matchID string) error
}

type conversationService struct {
	messageRepo  repositories.MessageRepository
	matchService MatchService
	publisher    EventPublisher
}

func NewConversationService(
	messageRepo repositories.MessageRepository,
	matchService MatchService,
	publisher EventPublisher,
) ConversationService {
	return &conversationService{
		messageRepo:  messageRepo,
		matchService: matchService,
		publisher:    publisher,
	}
}

func (s *conversationService) CanAccess(userID, matchID string) (bool, error) {
	if _, err := s.matchService.GetForParticipant(userID, matchID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *conversationService) PostMessage(userID, matchID, body string) (*models.Message, error) {
	match, err := s.matchService.GetForParticipant(userID, matchID)
	if err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewBadRequestError("Message body must not be empty")
	}
	if len(body) > maxMessageBodyLen {
		return nil, apperrors.ErrMessageTooLong
	}

	message := &models.Message{
		MatchID:  match.ID,
		SenderID: userID,
		Body:     body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.TransientStorageError("store message", err)
	}

	logger.Debug("message posted", "match_id", match.ID, "sender_id", userID)
	s.publisher.Publish([]string{match.UserAID, match.UserBID}, Event{
		Type:    EventMessageCreated,
		MatchID: match.ID,
		Payload: message,
	})
	return message, nil
}

func (s *conversationService) ListMessages(userID, matchID string, opts ListMessagesOptions) (*dto.MessageList, error) {
	match, err := s.matchService.GetForParticipant(userID, matchID)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	if limit > maxMessagePageSize {
		limit = maxMessagePageSize
	}

	messages, err := s.messageRepo.ListByMatch(match.ID, repositories.MessageListOptions{
		Limit:  limit,
		Before: opts.Before,
	})
	if err != nil {
		return nil, apperrors.TransientStorageError("list messages", err)
	}
	return &dto.MessageList{Messages: messages, Total: len(messages)}, nil
}

func (s *conversationService) MarkRead(userID, matchID string) error {
	match, err := s.matchService.GetForParticipant(userID, matchID)
	if err != nil {
		return err
	}
	if err := s.messageRepo.MarkRead(match.ID, userID); err != nil {
		return apperrors.TransientStorageError("mark messages read", err)
	}
	return nil
}
