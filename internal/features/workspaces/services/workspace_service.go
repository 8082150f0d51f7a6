package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	audit_logs "promoforge-backend/internal/features/audit_logs"
	users_models "promoforge-backend/internal/features/users/models"
	workspaces_interfaces "promoforge-backend/internal/features/workspaces/interfaces"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"
	workspaces_repositories "promoforge-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceService struct {
	workspaceRepository        *workspaces_repositories.WorkspaceRepository
	productAssociations        *workspaces_repositories.WorkspaceProductRepository
	contentAssociations        *workspaces_repositories.WorkspaceContentRepository
	scheduleRepository         *workspaces_repositories.WorkspaceScheduleRepository
	auditLogService            *audit_logs.AuditLogService
	workspaceDeletionListeners []workspaces_interfaces.WorkspaceDeletionListener
}

func (s *WorkspaceService) AddWorkspaceDeletionListener(
	listener workspaces_interfaces.WorkspaceDeletionListener,
) {
	s.workspaceDeletionListeners = append(s.workspaceDeletionListeners, listener)
}

func (s *WorkspaceService) CreateWorkspace(
	user *users_models.User,
	name string,
) (*workspaces_models.Workspace, error) {
	workspace := &workspaces_models.Workspace{
		ID:     uuid.New(),
		UserID: user.ID,
		Name:   name,
		Status: workspaces_models.WorkspaceStatusDraft,
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&user.ID,
		&workspace.ID,
	)

	return workspace, nil
}

func (s *WorkspaceService) GetWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("workspace not found")
		}

		return nil, err
	}

	if workspace.UserID != user.ID {
		return nil, errors.New("insufficient permissions to view this workspace")
	}

	return workspace, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) ([]*workspaces_models.Workspace, error) {
	return s.workspaceRepository.GetWorkspacesByUserID(user.ID)
}

func (s *WorkspaceService) RenameWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
	name string,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return nil, err
	}

	// the wizard only mutates workspaces that were not launched yet
	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return nil, errors.New("only draft workspaces can be renamed")
	}

	if err := s.workspaceRepository.UpdateWorkspaceName(workspaceID, name); err != nil {
		return nil, fmt.Errorf("failed to rename workspace: %w", err)
	}

	workspace.Name = name
	workspace.UpdatedAt = time.Now().UTC()

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace renamed: %s", name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
) error {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return err
	}

	for _, listener := range s.workspaceDeletionListeners {
		if err := listener.OnBeforeWorkspaceDeletion(workspaceID); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}
	}

	if err := s.scheduleRepository.DeleteByWorkspaceID(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace schedules: %w", err)
	}

	if err := s.contentAssociations.DeleteByWorkspaceID(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace content: %w", err)
	}

	if err := s.productAssociations.DeleteByWorkspaceID(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace products: %w", err)
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

func (s *WorkspaceService) GetAuditLogs(
	user *users_models.User,
	workspaceID uuid.UUID,
	limit int,
) ([]*audit_logs.AuditLog, error) {
	if _, err := s.GetWorkspace(user, workspaceID); err != nil {
		return nil, err
	}

	return s.auditLogService.GetWorkspaceAuditLogs(workspaceID, limit)
}

func (s *WorkspaceService) AddProduct(
	user *users_models.User,
	workspaceID uuid.UUID,
	productID uuid.UUID,
) (*workspaces_models.WorkspaceProduct, error) {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return nil, errors.New("only draft workspaces can be modified")
	}

	exists, err := s.productAssociations.ExistsPair(workspaceID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product association: %w", err)
	}

	if exists {
		return nil, errors.New("product is already part of this workspace")
	}

	association := &workspaces_models.WorkspaceProduct{
		WorkspaceID: workspaceID,
		ProductID:   productID,
	}

	if err := s.productAssociations.Create(association); err != nil {
		return nil, fmt.Errorf("failed to add product to workspace: %w", err)
	}

	return association, nil
}

func (s *WorkspaceService) GetProducts(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceProduct, error) {
	if _, err := s.GetWorkspace(user, workspaceID); err != nil {
		return nil, err
	}

	return s.productAssociations.FindByWorkspaceID(workspaceID)
}

func (s *WorkspaceService) RemoveProduct(
	user *users_models.User,
	workspaceID uuid.UUID,
	productID uuid.UUID,
) error {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return errors.New("only draft workspaces can be modified")
	}

	return s.productAssociations.DeleteByWorkspaceAndProduct(workspaceID, productID)
}

func (s *WorkspaceService) AddContent(
	user *users_models.User,
	workspaceID uuid.UUID,
	contentType workspaces_models.ContentType,
	contentID uuid.UUID,
) (*workspaces_models.WorkspaceContent, error) {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return nil, errors.New("only draft workspaces can be modified")
	}

	if !contentType.IsValid() {
		return nil, fmt.Errorf("unknown content type: %s", contentType)
	}

	association := &workspaces_models.WorkspaceContent{
		WorkspaceID: workspaceID,
		ContentType: contentType,
		ContentID:   contentID,
	}

	if err := s.contentAssociations.Create(association); err != nil {
		return nil, fmt.Errorf("failed to add content to workspace: %w", err)
	}

	return association, nil
}

func (s *WorkspaceService) GetContent(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceContent, error) {
	if _, err := s.GetWorkspace(user, workspaceID); err != nil {
		return nil, err
	}

	return s.contentAssociations.FindByWorkspaceID(workspaceID)
}

// RemoveContent also removes schedules referencing the content item so
// no schedule is left dangling outside the workspace content set.
func (s *WorkspaceService) RemoveContent(
	user *users_models.User,
	workspaceID uuid.UUID,
	contentID uuid.UUID,
) error {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return errors.New("only draft workspaces can be modified")
	}

	schedules, err := s.scheduleRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace schedules: %w", err)
	}

	for _, schedule := range schedules {
		if schedule.ContentID == contentID {
			if err := s.scheduleRepository.Delete(schedule.ID); err != nil {
				return fmt.Errorf("failed to delete dependent schedule: %w", err)
			}
		}
	}

	return s.contentAssociations.DeleteByWorkspaceAndContent(workspaceID, contentID)
}

func (s *WorkspaceService) AddSchedule(
	user *users_models.User,
	workspaceID uuid.UUID,
	platform string,
	contentID uuid.UUID,
	scheduledAt time.Time,
) (*workspaces_models.WorkspaceSchedule, error) {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return nil, errors.New("only draft workspaces can be modified")
	}

	// every schedule must reference an item in this workspace's content set
	contentItems, err := s.contentAssociations.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace content: %w", err)
	}

	referenced := false
	for _, item := range contentItems {
		if item.ContentID == contentID {
			referenced = true
			break
		}
	}

	if !referenced {
		return nil, errors.New("schedule references content not selected in this workspace")
	}

	exists, err := s.scheduleRepository.ExistsPendingForPlatform(
		workspaceID, platform, contentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing schedules: %w", err)
	}

	if exists {
		return nil, errors.New(
			"content item already has an active schedule for this platform",
		)
	}

	schedule := &workspaces_models.WorkspaceSchedule{
		WorkspaceID: workspaceID,
		Platform:    platform,
		ContentID:   contentID,
		ScheduledAt: scheduledAt,
		Status:      workspaces_models.ScheduleStatusPending,
	}

	if err := s.scheduleRepository.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return schedule, nil
}

func (s *WorkspaceService) GetSchedules(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceSchedule, error) {
	if _, err := s.GetWorkspace(user, workspaceID); err != nil {
		return nil, err
	}

	return s.scheduleRepository.FindByWorkspaceID(workspaceID)
}

func (s *WorkspaceService) RemoveSchedule(
	user *users_models.User,
	workspaceID uuid.UUID,
	scheduleID uuid.UUID,
) error {
	workspace, err := s.GetWorkspace(user, workspaceID)
	if err != nil {
		return err
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return errors.New("only draft workspaces can be modified")
	}

	return s.scheduleRepository.Delete(scheduleID)
}
