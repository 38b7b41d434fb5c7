package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/stream"
)

// chatTopic is shared by both directions of a conversation, so the pair is
// sorted before building the key.
func chatTopic(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return "chat:" + a + "|" + b
}

// ChatGormRepository stores the append-only message log. is_read is the only
// column that ever changes after insert.
type ChatGormRepository struct {
	db  *gorm.DB
	bus notify.Bus
}

func NewChatGormRepository(db *gorm.DB, bus notify.Bus) *ChatGormRepository {
	return &ChatGormRepository{db: db, bus: bus}
}

func (r *ChatGormRepository) Create(ctx context.Context, m *models.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp == 0 {
		m.Timestamp = time.Now().UnixMilli()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return httperr.Write("message_write_failed", err)
	}
	r.bus.Publish(ctx, chatTopic(m.SenderID, m.ReceiverID))
	return nil
}

func (r *ChatGormRepository) GetByID(ctx context.Context, id string) (*models.ChatMessage, error) {
	var m models.ChatMessage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Read("message_read_failed", err)
	}
	return &m, nil
}

// Conversation lists every message between a and b regardless of direction,
// newest first.
func (r *ChatGormRepository) Conversation(ctx context.Context, a, b string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			a, b, b, a,
		).
		Order("timestamp DESC").
		Find(&messages).Error
	if err != nil {
		return nil, httperr.Read("conversation_read_failed", err)
	}
	return messages, nil
}

// MarkRead flips is_read on one message.
func (r *ChatGormRepository) MarkRead(ctx context.Context, id string) error {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return httperr.NotFound("message_not_found")
	}

	err = r.db.WithContext(ctx).
		Model(&models.ChatMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return httperr.Write("message_write_failed", err)
	}
	r.bus.Publish(ctx, chatTopic(m.SenderID, m.ReceiverID))
	return nil
}

func (r *ChatGormRepository) Subscribe(ctx context.Context, a, b string) *stream.Subscription[models.ChatMessage] {
	signal, release := r.bus.Subscribe(ctx, chatTopic(a, b))
	return stream.Open(ctx, signal, release, func(ctx context.Context) ([]models.ChatMessage, error) {
		return r.Conversation(ctx, a, b)
	})
}
