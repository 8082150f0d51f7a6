package workspaces_dto

import (
	"time"

	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

type CreateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type RenameWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type AddProductRequestDTO struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

type AddContentRequestDTO struct {
	ContentType workspaces_models.ContentType `json:"contentType" binding:"required"`
	ContentID   uuid.UUID                     `json:"contentId"   binding:"required"`
}

type AddScheduleRequestDTO struct {
	Platform    string    `json:"platform"    binding:"required"`
	ContentID   uuid.UUID `json:"contentId"   binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

type WorkspaceResponseDTO struct {
	ID        uuid.UUID                         `json:"id"`
	Name      string                            `json:"name"`
	Status    workspaces_models.WorkspaceStatus `json:"status"`
	CreatedAt time.Time                         `json:"createdAt"`
	UpdatedAt time.Time                         `json:"updatedAt"`
}
