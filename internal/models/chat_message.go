package models

// ChatMessage is append-only; IsRead is the only field that may change after
// creation. Timestamp is epoch milliseconds.
type ChatMessage struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	SenderID   string `gorm:"size:36;index" json:"sender_id"`
	ReceiverID string `gorm:"size:36;index" json:"receiver_id"`

	Text      string `gorm:"type:text" json:"text"`
	Timestamp int64  `gorm:"index" json:"timestamp"`
	IsRead    bool   `json:"is_read"`
}
