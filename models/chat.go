package models

// ChatMessage is one persisted chat row.
type ChatMessage struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Timestamp  string `json:"timestamp" gorm:"column:timestamp"`
	User       string `json:"user" gorm:"column:user"`
	ChatString string `json:"chatString" gorm:"column:chatString"`
	EntityType string `json:"entityType" gorm:"column:entityType"`
}

func (ChatMessage) TableName() string { return "chat" }

// EmailSignup is one persisted mailing-list row.
type EmailSignup struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Email string `json:"email" gorm:"column:email"`
}

func (EmailSignup) TableName() string { return "mail" }
