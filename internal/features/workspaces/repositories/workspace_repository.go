package workspaces_repositories

import (
	"time"

	workspaces_models "promoforge-backend/internal/features/workspaces/models"
	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
)

type WorkspaceRepository struct{}

func (r *WorkspaceRepository) CreateWorkspace(
	workspace *workspaces_models.Workspace,
) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}

	workspace.UpdatedAt = workspace.CreatedAt

	return storage.GetDb().Create(workspace).Error
}

func (r *WorkspaceRepository) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	if err := storage.GetDb().
		Where("id = ?", workspaceID).
		First(&workspace).Error; err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetWorkspacesByUserID(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) GetWorkspacesByStatus(
	status workspaces_models.WorkspaceStatus,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	err := storage.GetDb().
		Where("status = ?", status).
		Find(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) UpdateWorkspaceName(
	workspaceID uuid.UUID,
	name string,
) error {
	return storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("id = ?", workspaceID).
		Updates(map[string]any{
			"name":       name,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *WorkspaceRepository) UpdateWorkspaceStatus(
	workspaceID uuid.UUID,
	status workspaces_models.WorkspaceStatus,
) error {
	return storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("id = ?", workspaceID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *WorkspaceRepository) DeleteWorkspace(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Delete(&workspaces_models.Workspace{}, workspaceID).Error
}
