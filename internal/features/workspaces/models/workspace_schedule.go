package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusPublished ScheduleStatus = "published"
	ScheduleStatusFailed    ScheduleStatus = "failed"
)

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusPublished, ScheduleStatusFailed:
		return true
	default:
		return false
	}
}

// WorkspaceSchedule maps one content item to one publish time on one
// platform. A content item has at most one active schedule per platform.
type WorkspaceSchedule struct {
	ID          uuid.UUID      `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID      `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	Platform    string         `json:"platform"    gorm:"column:platform;not null;type:varchar(50)"`
	ContentID   uuid.UUID      `json:"contentId"   gorm:"column:content_id;not null;type:uuid"`
	ScheduledAt time.Time      `json:"scheduledAt" gorm:"column:scheduled_at;not null"`
	Status      ScheduleStatus `json:"status"      gorm:"column:status;not null;type:varchar(20)"`
	CreatedAt   time.Time      `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time      `json:"updatedAt"   gorm:"column:updated_at"`
}

func (WorkspaceSchedule) TableName() string {
	return "workspace_schedules"
}
