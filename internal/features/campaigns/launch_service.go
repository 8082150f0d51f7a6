package campaigns

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	users_models "promoforge-backend/internal/features/users/models"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"promoforge-backend/internal/features/providers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LaunchResult reports the full fan-out: one outcome per active
// provider, in provider order, regardless of how many failed.
type LaunchResult struct {
	Launched bool                              `json:"launched"`
	Status   workspaces_models.WorkspaceStatus `json:"status"`
	Outcomes []providers.DispatchOutcome       `json:"outcomes"`
}

type LaunchService struct {
	workspaceStore  WorkspaceStore
	productLinks    WorkspaceProductStore
	contentLinks    WorkspaceContentStore
	scheduleStore   WorkspaceScheduleStore
	aggregator      *Aggregator
	providerSource  ProviderSource
	dispatcher      ProviderDispatcher
	outcomeRecorder OutcomeRecorder
	auditWriter     AuditWriter
	logger          *slog.Logger
}

func NewLaunchService(
	workspaceStore WorkspaceStore,
	productLinks WorkspaceProductStore,
	contentLinks WorkspaceContentStore,
	scheduleStore WorkspaceScheduleStore,
	aggregator *Aggregator,
	providerSource ProviderSource,
	dispatcher ProviderDispatcher,
	outcomeRecorder OutcomeRecorder,
	auditWriter AuditWriter,
	logger *slog.Logger,
) *LaunchService {
	return &LaunchService{
		workspaceStore:  workspaceStore,
		productLinks:    productLinks,
		contentLinks:    contentLinks,
		scheduleStore:   scheduleStore,
		aggregator:      aggregator,
		providerSource:  providerSource,
		dispatcher:      dispatcher,
		outcomeRecorder: outcomeRecorder,
		auditWriter:     auditWriter,
		logger:          logger,
	}
}

// Launch pushes the assembled workspace to every active provider of its
// owner and transitions it draft → scheduled only if every provider
// accepted the payload. On any failure the workspace stays draft and
// the caller receives the complete outcome list to act on.
func (s *LaunchService) Launch(
	user *users_models.User,
	workspaceID uuid.UUID,
) (*LaunchResult, error) {
	workspace, err := s.workspaceStore.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}

		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	if workspace.UserID != user.ID {
		return nil, ErrWorkspaceNotFound
	}

	if workspace.Status != workspaces_models.WorkspaceStatusDraft {
		return nil, ErrInvalidWorkspaceState
	}

	activeProviders, err := s.providerSource.GetActiveProviders(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}

	if len(activeProviders) == 0 {
		return nil, ErrNoActiveProviders
	}

	payload, err := s.assemblePayload(workspace)
	if err != nil {
		return nil, err
	}

	outcomes := s.fanOut(activeProviders, payload)

	for _, outcome := range outcomes {
		s.outcomeRecorder.RecordDispatchOutcome(outcome)
	}

	allAccepted := true
	for _, outcome := range outcomes {
		if !outcome.Success {
			allAccepted = false
			break
		}
	}

	result := &LaunchResult{
		Launched: allAccepted,
		Status:   workspace.Status,
		Outcomes: outcomes,
	}

	if !allAccepted {
		s.logger.Warn(
			"workspace launch rejected by at least one provider",
			"workspaceId", workspaceID,
			"providers", len(activeProviders),
		)

		s.markSchedules(
			payload.Schedules,
			workspaces_models.ScheduleStatusPending,
			workspaces_models.ScheduleStatusFailed,
		)

		s.auditWriter.WriteAuditLog(
			fmt.Sprintf("Launch failed for workspace: %s", workspace.Name),
			&user.ID,
			&workspaceID,
		)

		return result, nil
	}

	// a retried launch after a failed one clears the failure marks
	s.markSchedules(
		payload.Schedules,
		workspaces_models.ScheduleStatusFailed,
		workspaces_models.ScheduleStatusPending,
	)

	if err := s.workspaceStore.UpdateWorkspaceStatus(
		workspaceID, workspaces_models.WorkspaceStatusScheduled,
	); err != nil {
		return nil, fmt.Errorf("failed to update workspace status: %w", err)
	}

	result.Status = workspaces_models.WorkspaceStatusScheduled

	s.logger.Info(
		"workspace launched",
		"workspaceId", workspaceID,
		"providers", len(activeProviders),
	)

	s.auditWriter.WriteAuditLog(
		fmt.Sprintf("Workspace launched: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return result, nil
}

// markSchedules moves every schedule currently in the from status into
// the to status. Marking is best effort: a store error is logged and
// skipped so the launch outcome the caller already holds stays intact.
func (s *LaunchService) markSchedules(
	schedules []*workspaces_models.WorkspaceSchedule,
	from workspaces_models.ScheduleStatus,
	to workspaces_models.ScheduleStatus,
) {
	for _, schedule := range schedules {
		if schedule.Status != from {
			continue
		}

		if err := s.scheduleStore.UpdateStatus(schedule.ID, to); err != nil {
			s.logger.Error(
				"failed to update schedule status",
				"scheduleId", schedule.ID,
				"status", to,
				"error", err,
			)
			continue
		}

		schedule.Status = to
	}
}

// GetCampaignDetails returns the workspace together with its fully
// resolved materials and schedules, the same view a provider would
// receive on launch.
func (s *LaunchService) GetCampaignDetails(
	user *users_models.User,
	workspaceID uuid.UUID,
) (*LaunchPayload, error) {
	workspace, err := s.workspaceStore.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}

		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	if workspace.UserID != user.ID {
		return nil, ErrWorkspaceNotFound
	}

	return s.assemblePayload(workspace)
}

func (s *LaunchService) assemblePayload(
	workspace *workspaces_models.Workspace,
) (*LaunchPayload, error) {
	productLinks, err := s.productLinks.FindByWorkspaceID(workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace products: %w", err)
	}

	contentLinks, err := s.contentLinks.FindByWorkspaceID(workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace content: %w", err)
	}

	schedules, err := s.scheduleStore.FindByWorkspaceID(workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace schedules: %w", err)
	}

	productIDs := make([]uuid.UUID, len(productLinks))
	for i, link := range productLinks {
		productIDs[i] = link.ProductID
	}

	materials, err := s.aggregator.Load(productIDs, contentLinks)
	if err != nil {
		return nil, err
	}

	return NewLaunchPayload(workspace, materials, schedules), nil
}

// fanOut dispatches the payload to every provider concurrently. Each
// goroutine writes only its own slice index, so no mutex is needed, and
// the result order matches the provider order.
func (s *LaunchService) fanOut(
	activeProviders []*providers.Provider,
	payload *LaunchPayload,
) []providers.DispatchOutcome {
	outcomes := make([]providers.DispatchOutcome, len(activeProviders))

	var wg sync.WaitGroup
	wg.Add(len(activeProviders))

	for i, provider := range activeProviders {
		go func(i int, provider *providers.Provider) {
			defer wg.Done()
			outcomes[i] = s.dispatcher.Dispatch(provider, payload)
		}(i, provider)
	}

	wg.Wait()

	return outcomes
}
