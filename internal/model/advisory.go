package model

import "time"

// Advisory request status values
const (
	AdvisoryPending    = "Pending"
	AdvisoryInProgress = "In Progress"
	AdvisoryCompleted  = "Completed"
	AdvisoryUrgent     = "Urgent"
)

// Advisory priority values
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// AdvisoryRequest represents a legal advisory request from a department
type AdvisoryRequest struct {
	BaseModel
	RequestNumber string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"request_number" validate:"required"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	RequestedBy   string    `gorm:"type:varchar(255)" json:"requested_by" validate:"required"`
	Department    string    `gorm:"type:varchar(100)" json:"department" validate:"required"`
	DateReceived  time.Time `json:"date_received"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `gorm:"type:varchar(50);default:'Pending'" json:"status" validate:"required,oneof=Pending 'In Progress' Completed Urgent"`
	AssignedTo    string    `gorm:"type:varchar(255)" json:"assigned_to"`
	Priority      string    `gorm:"type:varchar(50);default:'Medium'" json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Description   string    `gorm:"type:text" json:"description"`
}

// Overdue reports whether the request is past due and still open
func (a *AdvisoryRequest) Overdue(now time.Time) bool {
	return a.Status != AdvisoryCompleted && a.Status != AdvisoryUrgent && now.After(a.DueDate)
}
