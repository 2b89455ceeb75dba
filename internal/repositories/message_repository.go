package repositories

import (
	"errors"
	"time"

	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageListOptions controls conversation pagination. Before narrows to
// messages created strictly before the cursor.
type MessageListOptions struct {
	Limit  int
	Before *time.Time
}

type MessageRepository interface {
	Create(message *models.Message) error
	// ListByMatch returns messages oldest-first.
	ListByMatch(matchID string, opts MessageListOptions) ([]models.Message, error)
	MarkRead(matchID, readerID string) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) ListByMatch(matchID string, opts MessageListOptions) ([]models.Message, error) {
	query := r.db.Where("match_id = ?", matchID)
	if opts.Before != nil {
		query = query.Where("created_at < ?", *opts.Before)
	}
	if opts.Limit > 0 {
		// Take the newest window, then flip to ascending below.
		var window []models.Message
		err := query.Order("created_at DESC").Limit(opts.Limit).Find(&window).Error
		if err != nil {
			return nil, err
		}
		for i, j := 0, len(window)-1; i < j; i, j = i+1, j-1 {
			window[i], window[j] = window[j], window[i]
		}
		return window, nil
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// MarkRead stamps every unread message sent by the other participant.
func (r *MessageRepositoryImpl) MarkRead(matchID, readerID string) error {
	return r.db.Model(&models.Message{}).
		Where("match_id = ? AND sender_id <> ? AND read_at IS NULL", matchID, readerID).
		Update("read_at", time.Now()).Error
}
