package campaigns

import (
	audit_logs "promoforge-backend/internal/features/audit_logs"
	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	"promoforge-backend/internal/features/providers"
	workspaces_repositories "promoforge-backend/internal/features/workspaces/repositories"
	"promoforge-backend/internal/util/logger"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}
var workspaceProductRepository = &workspaces_repositories.WorkspaceProductRepository{}
var workspaceContentRepository = &workspaces_repositories.WorkspaceContentRepository{}
var workspaceScheduleRepository = &workspaces_repositories.WorkspaceScheduleRepository{}

var aggregator = NewAggregator(
	products.GetProductService(),
	content.GetContentService(),
)

var launchService = NewLaunchService(
	workspaceRepository,
	workspaceProductRepository,
	workspaceContentRepository,
	workspaceScheduleRepository,
	aggregator,
	providers.GetProviderService(),
	providers.GetDispatcher(),
	providers.GetProviderService(),
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
)

var scheduleService = NewScheduleService(
	workspaceRepository,
	workspaceScheduleRepository,
	logger.GetLogger(),
)

var campaignController = &CampaignController{
	launchService,
}

func GetLaunchService() *LaunchService {
	return launchService
}

func GetScheduleService() *ScheduleService {
	return scheduleService
}

func GetCampaignController() *CampaignController {
	return campaignController
}
