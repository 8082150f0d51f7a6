package campaigns

import (
	"log/slog"
	"time"

	workspaces_models "promoforge-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type WorkspaceLifecycleStore interface {
	GetWorkspacesByStatus(
		status workspaces_models.WorkspaceStatus,
	) ([]*workspaces_models.Workspace, error)
	UpdateWorkspaceStatus(
		workspaceID uuid.UUID,
		status workspaces_models.WorkspaceStatus,
	) error
}

type SchedulePublisher interface {
	FindByWorkspaceID(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.WorkspaceSchedule, error)
	UpdateStatus(
		scheduleID uuid.UUID,
		status workspaces_models.ScheduleStatus,
	) error
}

// ScheduleService advances launched workspaces through their lifecycle:
// scheduled → active once the first publication window opens, active →
// completed once no pending schedule remains. Pending schedules whose
// time has passed are marked published; the providers already received
// the full schedule on launch and handle the actual publication.
type ScheduleService struct {
	workspaceStore WorkspaceLifecycleStore
	scheduleStore  SchedulePublisher
	logger         *slog.Logger
	cron           *cron.Cron
}

func NewScheduleService(
	workspaceStore WorkspaceLifecycleStore,
	scheduleStore SchedulePublisher,
	logger *slog.Logger,
) *ScheduleService {
	return &ScheduleService{
		workspaceStore: workspaceStore,
		scheduleStore:  scheduleStore,
		logger:         logger,
	}
}

func (s *ScheduleService) Start() {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc("@every 1m", s.Tick); err != nil {
		s.logger.Error("failed to register schedule poller", "error", err)
		return
	}

	s.cron.Start()
	s.logger.Info("schedule poller started")
}

func (s *ScheduleService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Tick runs one pass over launched workspaces. It is exported so a
// single pass can be driven directly.
func (s *ScheduleService) Tick() {
	now := time.Now().UTC()

	s.activateScheduledWorkspaces(now)
	s.completeActiveWorkspaces(now)
}

func (s *ScheduleService) activateScheduledWorkspaces(now time.Time) {
	workspaces, err := s.workspaceStore.GetWorkspacesByStatus(
		workspaces_models.WorkspaceStatusScheduled,
	)
	if err != nil {
		s.logger.Error("failed to load scheduled workspaces", "error", err)
		return
	}

	for _, workspace := range workspaces {
		schedules, err := s.scheduleStore.FindByWorkspaceID(workspace.ID)
		if err != nil {
			s.logger.Error(
				"failed to load schedules",
				"workspaceId", workspace.ID, "error", err,
			)
			continue
		}

		opened := false
		for _, schedule := range schedules {
			if !schedule.ScheduledAt.After(now) {
				opened = true
				break
			}
		}

		if !opened {
			continue
		}

		if err := s.workspaceStore.UpdateWorkspaceStatus(
			workspace.ID, workspaces_models.WorkspaceStatusActive,
		); err != nil {
			s.logger.Error(
				"failed to activate workspace",
				"workspaceId", workspace.ID, "error", err,
			)
			continue
		}

		s.logger.Info("workspace activated", "workspaceId", workspace.ID)
	}
}

func (s *ScheduleService) completeActiveWorkspaces(now time.Time) {
	workspaces, err := s.workspaceStore.GetWorkspacesByStatus(
		workspaces_models.WorkspaceStatusActive,
	)
	if err != nil {
		s.logger.Error("failed to load active workspaces", "error", err)
		return
	}

	for _, workspace := range workspaces {
		schedules, err := s.scheduleStore.FindByWorkspaceID(workspace.ID)
		if err != nil {
			s.logger.Error(
				"failed to load schedules",
				"workspaceId", workspace.ID, "error", err,
			)
			continue
		}

		pending := 0
		for _, schedule := range schedules {
			if schedule.Status != workspaces_models.ScheduleStatusPending {
				continue
			}

			if schedule.ScheduledAt.After(now) {
				pending++
				continue
			}

			if err := s.scheduleStore.UpdateStatus(
				schedule.ID, workspaces_models.ScheduleStatusPublished,
			); err != nil {
				s.logger.Error(
					"failed to mark schedule published",
					"scheduleId", schedule.ID, "error", err,
				)
				pending++
			}
		}

		if pending > 0 {
			continue
		}

		if err := s.workspaceStore.UpdateWorkspaceStatus(
			workspace.ID, workspaces_models.WorkspaceStatusCompleted,
		); err != nil {
			s.logger.Error(
				"failed to complete workspace",
				"workspaceId", workspace.ID, "error", err,
			)
			continue
		}

		s.logger.Info("workspace completed", "workspaceId", workspace.ID)
	}
}
