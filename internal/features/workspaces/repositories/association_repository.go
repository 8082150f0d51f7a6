package workspaces_repositories

import (
	"time"

	workspaces_models "promoforge-backend/internal/features/workspaces/models"
	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
)

type WorkspaceProductRepository struct{}

func (r *WorkspaceProductRepository) Create(
	association *workspaces_models.WorkspaceProduct,
) error {
	if association.ID == uuid.Nil {
		association.ID = uuid.New()
	}

	if association.CreatedAt.IsZero() {
		association.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(association).Error
}

func (r *WorkspaceProductRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceProduct, error) {
	var associations []*workspaces_models.WorkspaceProduct

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Find(&associations).Error

	return associations, err
}

func (r *WorkspaceProductRepository) ExistsPair(
	workspaceID uuid.UUID,
	productID uuid.UUID,
) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.WorkspaceProduct{}).
		Where("workspace_id = ? AND product_id = ?", workspaceID, productID).
		Count(&count).Error

	return count > 0, err
}

func (r *WorkspaceProductRepository) DeleteByWorkspaceAndProduct(
	workspaceID uuid.UUID,
	productID uuid.UUID,
) error {
	return storage.GetDb().
		Where("workspace_id = ? AND product_id = ?", workspaceID, productID).
		Delete(&workspaces_models.WorkspaceProduct{}).Error
}

func (r *WorkspaceProductRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&workspaces_models.WorkspaceProduct{}).Error
}

type WorkspaceContentRepository struct{}

func (r *WorkspaceContentRepository) Create(
	association *workspaces_models.WorkspaceContent,
) error {
	if association.ID == uuid.Nil {
		association.ID = uuid.New()
	}

	if association.CreatedAt.IsZero() {
		association.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(association).Error
}

func (r *WorkspaceContentRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceContent, error) {
	var associations []*workspaces_models.WorkspaceContent

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Find(&associations).Error

	return associations, err
}

func (r *WorkspaceContentRepository) DeleteByWorkspaceAndContent(
	workspaceID uuid.UUID,
	contentID uuid.UUID,
) error {
	return storage.GetDb().
		Where("workspace_id = ? AND content_id = ?", workspaceID, contentID).
		Delete(&workspaces_models.WorkspaceContent{}).Error
}

func (r *WorkspaceContentRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&workspaces_models.WorkspaceContent{}).Error
}

type WorkspaceScheduleRepository struct{}

func (r *WorkspaceScheduleRepository) Create(
	schedule *workspaces_models.WorkspaceSchedule,
) error {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	schedule.UpdatedAt = schedule.CreatedAt

	return storage.GetDb().Create(schedule).Error
}

func (r *WorkspaceScheduleRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceSchedule, error) {
	var schedules []*workspaces_models.WorkspaceSchedule

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("scheduled_at ASC").
		Find(&schedules).Error

	return schedules, err
}

func (r *WorkspaceScheduleRepository) ExistsPendingForPlatform(
	workspaceID uuid.UUID,
	platform string,
	contentID uuid.UUID,
) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.WorkspaceSchedule{}).
		Where(
			"workspace_id = ? AND platform = ? AND content_id = ? AND status = ?",
			workspaceID, platform, contentID, workspaces_models.ScheduleStatusPending,
		).
		Count(&count).Error

	return count > 0, err
}

func (r *WorkspaceScheduleRepository) UpdateStatus(
	scheduleID uuid.UUID,
	status workspaces_models.ScheduleStatus,
) error {
	return storage.GetDb().
		Model(&workspaces_models.WorkspaceSchedule{}).
		Where("id = ?", scheduleID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *WorkspaceScheduleRepository) Delete(scheduleID uuid.UUID) error {
	return storage.GetDb().
		Delete(&workspaces_models.WorkspaceSchedule{}, scheduleID).Error
}

func (r *WorkspaceScheduleRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&workspaces_models.WorkspaceSchedule{}).Error
}
