package repository_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	repo "github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.ChatMessage{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newChatRepo(t *testing.T) *repo.ChatGormRepository {
	return repo.NewChatGormRepository(setupTestDB(t), notify.NewMemoryBus())
}

func TestChatConversationFiltersBothDirections(t *testing.T) {
	r := newChatRepo(t)
	ctx := context.Background()

	seed := []models.ChatMessage{
		{SenderID: "a", ReceiverID: "b", Text: "hi", Timestamp: 100},
		{SenderID: "b", ReceiverID: "a", Text: "hello", Timestamp: 200},
		{SenderID: "a", ReceiverID: "c", Text: "wrong pair", Timestamp: 300},
		{SenderID: "a", ReceiverID: "b", Text: "how is the car", Timestamp: 400},
	}
	for i := range seed {
		if err := r.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	msgs, err := r.Conversation(ctx, "a", "b")
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	// newest first
	if msgs[0].Timestamp != 400 || msgs[1].Timestamp != 200 || msgs[2].Timestamp != 100 {
		t.Errorf("messages out of order: %+v", msgs)
	}
	for _, m := range msgs {
		pair := m.SenderID + m.ReceiverID
		if pair != "ab" && pair != "ba" {
			t.Errorf("foreign message leaked into conversation: %+v", m)
		}
	}
}

func TestChatCreateDefaultsTimestamp(t *testing.T) {
	r := newChatRepo(t)

	m := models.ChatMessage{SenderID: "a", ReceiverID: "b", Text: "hi"}
	if err := r.Create(context.Background(), &m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Error("expected an assigned id")
	}
	if m.Timestamp == 0 {
		t.Error("expected a defaulted timestamp")
	}
	if m.IsRead {
		t.Error("new messages must start unread")
	}
}

func TestChatMarkRead(t *testing.T) {
	r := newChatRepo(t)
	ctx := context.Background()

	m := models.ChatMessage{SenderID: "a", ReceiverID: "b", Text: "hi"}
	if err := r.Create(ctx, &m); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := r.MarkRead(ctx, m.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	got, err := r.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || !got.IsRead {
		t.Fatalf("expected message marked read, got %+v", got)
	}
	if got.Text != "hi" || got.Timestamp != m.Timestamp {
		t.Errorf("mark read must not touch other fields: %+v", got)
	}
}

func TestChatMarkReadUnknownMessage(t *testing.T) {
	r := newChatRepo(t)

	err := r.MarkRead(context.Background(), "ghost")
	if httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestChatSubscribe(t *testing.T) {
	r := newChatRepo(t)
	ctx := context.Background()

	sub := r.Subscribe(ctx, "a", "b")
	defer sub.Cancel()

	if snap := mustSnapshot(t, sub.Updates()); len(snap) != 0 {
		t.Fatalf("expected empty initial snapshot, got %+v", snap)
	}

	if err := r.Create(ctx, &models.ChatMessage{SenderID: "b", ReceiverID: "a", Text: "hello"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	snap := mustSnapshot(t, sub.Updates())
	if len(snap) != 1 || snap[0].Text != "hello" {
		t.Fatalf("expected snapshot with the new message, got %+v", snap)
	}
}
