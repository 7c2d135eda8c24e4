package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions
const (
	ActionView     = "VIEW"
	ActionCreate   = "CREATE"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionDownload = "DOWNLOAD"
)

// Audited resource kinds
const (
	ResourceUser     = "user"
	ResourceCase     = "case"
	ResourceAdvisory = "advisory"
	ResourceDocument = "document"
	ResourceSession  = "session"
)

// AuditLog is an append-only activity record. Rows are written by the
// audit recorder and never updated.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:varchar(64);index" json:"user_id"`
	UserName   string    `gorm:"type:varchar(255)" json:"user_name"`
	Action     string    `gorm:"type:varchar(20);index" json:"action"`
	Resource   string    `gorm:"type:varchar(50)" json:"resource"`
	ResourceID string    `gorm:"type:varchar(100)" json:"resource_id"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
	IPAddress  string    `gorm:"type:varchar(64)" json:"ip_address"`
	Details    string    `gorm:"type:text" json:"details"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return
}
