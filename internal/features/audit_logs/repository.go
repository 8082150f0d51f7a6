package audit_logs

import (
	"time"

	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Save(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	limit int,
) ([]*AuditLog, error) {
	var logs []*AuditLog

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error

	return logs, err
}

func (r *AuditLogRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&AuditLog{}).Error
}
