package audit_logs

import (
	"log/slog"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog persists an audit entry. Failures are logged and
// swallowed so audit writes never break the calling operation.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	err := s.auditLogRepository.Save(&AuditLog{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
	})

	if err != nil {
		s.logger.Error("failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	limit int,
) ([]*AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	return s.auditLogRepository.FindByWorkspaceID(workspaceID, limit)
}

func (s *AuditLogService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.auditLogRepository.DeleteByWorkspaceID(workspaceID)
}
