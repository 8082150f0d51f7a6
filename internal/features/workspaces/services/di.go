package workspaces_services

import (
	audit_logs "promoforge-backend/internal/features/audit_logs"
	workspaces_repositories "promoforge-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaceRepository: &workspaces_repositories.WorkspaceRepository{},
	productAssociations: &workspaces_repositories.WorkspaceProductRepository{},
	contentAssociations: &workspaces_repositories.WorkspaceContentRepository{},
	scheduleRepository:  &workspaces_repositories.WorkspaceScheduleRepository{},
	auditLogService:     audit_logs.GetAuditLogService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func SetupDependencies() {
	workspaceService.AddWorkspaceDeletionListener(audit_logs.GetAuditLogService())
}
