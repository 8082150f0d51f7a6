package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeSocial ContentType = "social"
	ContentTypeImage  ContentType = "image"
)

func (t ContentType) IsValid() bool {
	return t == ContentTypeSocial || t == ContentTypeImage
}

// WorkspaceContent references an item in one of the two disjoint content
// stores. ContentID is the content item's own id, not the product id —
// dereferencing must look the item up by its own identifier.
type WorkspaceContent struct {
	ID          uuid.UUID   `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID   `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	ContentType ContentType `json:"contentType" gorm:"column:content_type;not null;type:varchar(20)"`
	ContentID   uuid.UUID   `json:"contentId"   gorm:"column:content_id;not null;type:uuid"`
	CreatedAt   time.Time   `json:"createdAt"   gorm:"column:created_at"`
}

func (WorkspaceContent) TableName() string {
	return "workspace_content"
}
