package campaigns

import (
	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

const launchAction = "launch_workspace"

type WorkspaceSummary struct {
	ID     uuid.UUID                         `json:"id"`
	Name   string                            `json:"name"`
	Status workspaces_models.WorkspaceStatus `json:"status"`
}

type ContentPayload struct {
	Social []*content.SocialContent  `json:"social"`
	Images []*content.GeneratedImage `json:"images"`
}

// LaunchPayload is the body POSTed to every active provider on launch.
// All providers receive the identical document.
type LaunchPayload struct {
	Action    string                                 `json:"action"`
	Workspace WorkspaceSummary                       `json:"workspace"`
	Products  []*products.Product                    `json:"products"`
	Content   ContentPayload                         `json:"content"`
	Schedules []*workspaces_models.WorkspaceSchedule `json:"schedules"`
}

func NewLaunchPayload(
	workspace *workspaces_models.Workspace,
	materials *CampaignMaterials,
	schedules []*workspaces_models.WorkspaceSchedule,
) *LaunchPayload {
	return &LaunchPayload{
		Action: launchAction,
		Workspace: WorkspaceSummary{
			ID:     workspace.ID,
			Name:   workspace.Name,
			Status: workspace.Status,
		},
		Products: materials.Products,
		Content: ContentPayload{
			Social: materials.Social,
			Images: materials.Images,
		},
		Schedules: schedules,
	}
}
