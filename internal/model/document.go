package model

import (
	"time"

	"github.com/google/uuid"
)

// Document categories
const (
	DocTypeMoU            = "MoU"
	DocTypeCourtProcess   = "Court Process"
	DocTypeLegalOpinion   = "Legal Opinion"
	DocTypeContract       = "Contract"
	DocTypeCorrespondence = "Correspondence"
)

// Document status values
const (
	DocStatusDraft    = "Draft"
	DocStatusFinal    = "Final"
	DocStatusArchived = "Archived"
)

// LegalDocument is document metadata only. File content storage is handled
// outside this system.
type LegalDocument struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	DocType      string     `gorm:"type:varchar(50);not null" json:"type" validate:"required,oneof=MoU 'Court Process' 'Legal Opinion' Contract Correspondence"`
	CaseID       *uuid.UUID `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Version      string     `gorm:"type:varchar(20);default:'1.0'" json:"version"`
	UploadedBy   string     `gorm:"type:varchar(255)" json:"uploaded_by"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	LastModified time.Time  `json:"last_modified"`
	Size         string     `gorm:"type:varchar(20)" json:"size"`
	Status       string     `gorm:"type:varchar(50);default:'Draft'" json:"status" validate:"required,oneof=Draft Final Archived"`
}
