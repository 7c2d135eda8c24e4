package model

import "time"

// Procedural stages of a litigation case. Court process is not strictly
// ordered, so the stage is stored as-is and never validated as a sequence.
const (
	StageMention       = "Mention"
	StageInterlocutory = "Interlocutory"
	StageTrial         = "Trial"
	StageJudgment      = "Judgment"
)

// Case status values
const (
	CaseStatusActive  = "Active"
	CaseStatusPending = "Pending"
	CaseStatusClosed  = "Closed"
	CaseStatusUrgent  = "Urgent"
)

// LitigationCase represents a suit tracked by the registry
type LitigationCase struct {
	BaseModel
	SuitNumber      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"suit_number" validate:"required"`
	CaseTitle       string    `gorm:"type:varchar(255);not null" json:"case_title" validate:"required"`
	AdversaryParty  string    `gorm:"type:varchar(255)" json:"adversary_party" validate:"required"`
	ProceduralStage string    `gorm:"type:varchar(50);default:'Mention'" json:"procedural_stage" validate:"required,oneof=Mention Interlocutory Trial Judgment"`
	AssignedCounsel string    `gorm:"type:varchar(255)" json:"assigned_counsel" validate:"required"`
	Status          string    `gorm:"type:varchar(50);default:'Active'" json:"status" validate:"required,oneof=Active Pending Closed Urgent"`
	NextHearing     time.Time `json:"next_hearing"`
	Court           string    `gorm:"type:varchar(255)" json:"court" validate:"required"`
	FiledDate       time.Time `json:"filed_date"`
	Description     string    `gorm:"type:text" json:"description"`
}

// HearingWithin reports whether the next hearing falls inside the window
// starting at now. Past hearings are never urgent.
func (c *LitigationCase) HearingWithin(now time.Time, window time.Duration) bool {
	until := c.NextHearing.Sub(now)
	return until > 0 && until <= window
}
