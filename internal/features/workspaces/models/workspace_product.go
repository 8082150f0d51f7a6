package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceProduct associates one product with one workspace. Rows are
// immutable once created: they are only ever inserted or deleted.
type WorkspaceProduct struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index;uniqueIndex:idx_workspace_product"`
	ProductID   uuid.UUID `json:"productId"   gorm:"column:product_id;not null;type:uuid;uniqueIndex:idx_workspace_product"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (WorkspaceProduct) TableName() string {
	return "workspace_products"
}
