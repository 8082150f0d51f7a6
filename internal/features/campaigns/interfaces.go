package campaigns

import (
	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	"promoforge-backend/internal/features/providers"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// The launch pipeline depends on narrow interfaces instead of the
// concrete services so the orchestration logic can be tested without a
// database or live providers.

type WorkspaceStore interface {
	GetWorkspaceByID(workspaceID uuid.UUID) (*workspaces_models.Workspace, error)
	UpdateWorkspaceStatus(
		workspaceID uuid.UUID,
		status workspaces_models.WorkspaceStatus,
	) error
}

type WorkspaceProductStore interface {
	FindByWorkspaceID(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.WorkspaceProduct, error)
}

type WorkspaceContentStore interface {
	FindByWorkspaceID(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.WorkspaceContent, error)
}

type WorkspaceScheduleStore interface {
	FindByWorkspaceID(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.WorkspaceSchedule, error)
	UpdateStatus(
		scheduleID uuid.UUID,
		status workspaces_models.ScheduleStatus,
	) error
}

type ProductLoader interface {
	GetProductsByIDs(ids []uuid.UUID) ([]*products.Product, error)
}

type ContentLoader interface {
	GetSocialContentByIDs(ids []uuid.UUID) ([]*content.SocialContent, error)
	GetGeneratedImagesByIDs(ids []uuid.UUID) ([]*content.GeneratedImage, error)
}

type ProviderSource interface {
	GetActiveProviders(userID uuid.UUID) ([]*providers.Provider, error)
}

type ProviderDispatcher interface {
	Dispatch(provider *providers.Provider, payload any) providers.DispatchOutcome
}

type OutcomeRecorder interface {
	RecordDispatchOutcome(outcome providers.DispatchOutcome)
}

type AuditWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, workspaceID *uuid.UUID)
}
