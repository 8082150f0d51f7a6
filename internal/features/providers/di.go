package providers

import (
	audit_logs "promoforge-backend/internal/features/audit_logs"
	"promoforge-backend/internal/util/encryption"
	"promoforge-backend/internal/util/logger"
)

var providerRepository = &ProviderRepository{}
var dispatcher = NewDispatcher(encryption.GetFieldEncryptor(), logger.GetLogger())
var providerService = &ProviderService{
	providerRepository,
	dispatcher,
	encryption.GetFieldEncryptor(),
	audit_logs.GetAuditLogService(),
}
var providerController = &ProviderController{providerService}

func GetProviderController() *ProviderController {
	return providerController
}

func GetProviderService() *ProviderService {
	return providerService
}

func GetDispatcher() *Dispatcher {
	return dispatcher
}
