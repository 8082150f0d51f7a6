package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type WorkspaceStatus string

const (
	WorkspaceStatusDraft     WorkspaceStatus = "draft"
	WorkspaceStatusScheduled WorkspaceStatus = "scheduled"
	WorkspaceStatusActive    WorkspaceStatus = "active"
	WorkspaceStatusCompleted WorkspaceStatus = "completed"
)

func (s WorkspaceStatus) IsValid() bool {
	switch s {
	case WorkspaceStatusDraft, WorkspaceStatusScheduled,
		WorkspaceStatusActive, WorkspaceStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the lifecycle: draft → scheduled (launch),
// scheduled → active (first publication window opens), active →
// completed (all windows past). No backward transitions.
func (s WorkspaceStatus) CanTransitionTo(target WorkspaceStatus) bool {
	switch s {
	case WorkspaceStatusDraft:
		return target == WorkspaceStatusScheduled
	case WorkspaceStatusScheduled:
		return target == WorkspaceStatusActive
	case WorkspaceStatusActive:
		return target == WorkspaceStatusCompleted
	default:
		return false
	}
}

// Workspace is the campaign aggregate tying together selected products,
// content and a publication schedule.
type Workspace struct {
	ID        uuid.UUID       `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	UserID    uuid.UUID       `json:"userId"    gorm:"column:user_id;not null;type:uuid;index"`
	Name      string          `json:"name"      gorm:"column:name;not null;type:varchar(255)"`
	Status    WorkspaceStatus `json:"status"    gorm:"column:status;not null;type:varchar(20)"`
	CreatedAt time.Time       `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"column:updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
