package audit_logs

import (
	"promoforge-backend/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
