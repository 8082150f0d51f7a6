package campaigns

import (
	"sync"
	"testing"

	"promoforge-backend/internal/features/content"
	"promoforge-backend/internal/features/products"
	"promoforge-backend/internal/features/providers"
	users_models "promoforge-backend/internal/features/users/models"
	workspaces_models "promoforge-backend/internal/features/workspaces/models"
	"promoforge-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeWorkspaceStore struct {
	workspaces map[uuid.UUID]*workspaces_models.Workspace

	mu            sync.Mutex
	statusUpdates map[uuid.UUID]workspaces_models.WorkspaceStatus
}

func (f *fakeWorkspaceStore) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	return workspace, nil
}

func (f *fakeWorkspaceStore) UpdateWorkspaceStatus(
	workspaceID uuid.UUID,
	status workspaces_models.WorkspaceStatus,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.statusUpdates == nil {
		f.statusUpdates = make(map[uuid.UUID]workspaces_models.WorkspaceStatus)
	}
	f.statusUpdates[workspaceID] = status

	return nil
}

type fakeProductLinks struct {
	links []*workspaces_models.WorkspaceProduct
}

func (f *fakeProductLinks) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceProduct, error) {
	return f.links, nil
}

type fakeContentLinks struct {
	links []*workspaces_models.WorkspaceContent
}

func (f *fakeContentLinks) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceContent, error) {
	return f.links, nil
}

type fakeScheduleLinks struct {
	schedules []*workspaces_models.WorkspaceSchedule

	mu            sync.Mutex
	statusUpdates map[uuid.UUID]workspaces_models.ScheduleStatus
}

func (f *fakeScheduleLinks) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceSchedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleLinks) UpdateStatus(
	scheduleID uuid.UUID,
	status workspaces_models.ScheduleStatus,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.statusUpdates == nil {
		f.statusUpdates = make(map[uuid.UUID]workspaces_models.ScheduleStatus)
	}
	f.statusUpdates[scheduleID] = status

	return nil
}

type fakeProviderSource struct {
	providers []*providers.Provider
}

func (f *fakeProviderSource) GetActiveProviders(
	userID uuid.UUID,
) ([]*providers.Provider, error) {
	return f.providers, nil
}

// fakeDispatcher fails dispatches to the provider ids listed in failing
// and records every payload it was handed.
type fakeDispatcher struct {
	failing map[uuid.UUID]bool

	mu         sync.Mutex
	dispatched []uuid.UUID
}

func (f *fakeDispatcher) Dispatch(
	provider *providers.Provider,
	payload any,
) providers.DispatchOutcome {
	f.mu.Lock()
	f.dispatched = append(f.dispatched, provider.ID)
	f.mu.Unlock()

	if f.failing[provider.ID] {
		return providers.DispatchOutcome{
			ProviderID: provider.ID,
			Success:    false,
			Message:    "provider returned status 500 Internal Server Error",
		}
	}

	return providers.DispatchOutcome{
		ProviderID: provider.ID,
		Success:    true,
		Message:    "payload accepted",
	}
}

type fakeOutcomeRecorder struct {
	recorded []providers.DispatchOutcome
}

func (f *fakeOutcomeRecorder) RecordDispatchOutcome(outcome providers.DispatchOutcome) {
	f.recorded = append(f.recorded, outcome)
}

type fakeAuditWriter struct {
	messages []string
}

func (f *fakeAuditWriter) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	f.messages = append(f.messages, message)
}

type launchFixture struct {
	service        *LaunchService
	user           *users_models.User
	workspace      *workspaces_models.Workspace
	schedule       *workspaces_models.WorkspaceSchedule
	workspaceStore *fakeWorkspaceStore
	scheduleLinks  *fakeScheduleLinks
	dispatcher     *fakeDispatcher
	recorder       *fakeOutcomeRecorder
	audit          *fakeAuditWriter
}

func newLaunchFixture(
	status workspaces_models.WorkspaceStatus,
	activeProviders []*providers.Provider,
	failing map[uuid.UUID]bool,
) *launchFixture {
	user := &users_models.User{ID: uuid.New(), Email: "owner@example.com"}

	workspace := &workspaces_models.Workspace{
		ID:     uuid.New(),
		UserID: user.ID,
		Name:   "Summer Drop",
		Status: status,
	}

	product := &products.Product{ID: uuid.New(), Name: "Sneakers"}
	post := &content.SocialContent{ID: uuid.New(), Platform: "instagram"}

	schedule := &workspaces_models.WorkspaceSchedule{
		ID:          uuid.New(),
		WorkspaceID: workspace.ID,
		Platform:    "instagram",
		ContentID:   post.ID,
		Status:      workspaces_models.ScheduleStatusPending,
	}
	scheduleLinks := &fakeScheduleLinks{
		schedules: []*workspaces_models.WorkspaceSchedule{schedule},
	}

	workspaceStore := &fakeWorkspaceStore{
		workspaces: map[uuid.UUID]*workspaces_models.Workspace{workspace.ID: workspace},
	}

	dispatcher := &fakeDispatcher{failing: failing}
	recorder := &fakeOutcomeRecorder{}
	audit := &fakeAuditWriter{}

	aggregator := NewAggregator(
		&fakeProductLoader{products: map[uuid.UUID]*products.Product{product.ID: product}},
		&fakeContentLoader{
			social: map[uuid.UUID]*content.SocialContent{post.ID: post},
			images: map[uuid.UUID]*content.GeneratedImage{},
		},
	)

	service := NewLaunchService(
		workspaceStore,
		&fakeProductLinks{links: []*workspaces_models.WorkspaceProduct{
			{ID: uuid.New(), WorkspaceID: workspace.ID, ProductID: product.ID},
		}},
		&fakeContentLinks{links: []*workspaces_models.WorkspaceContent{
			{
				ID:          uuid.New(),
				WorkspaceID: workspace.ID,
				ContentType: workspaces_models.ContentTypeSocial,
				ContentID:   post.ID,
			},
		}},
		scheduleLinks,
		aggregator,
		&fakeProviderSource{providers: activeProviders},
		dispatcher,
		recorder,
		audit,
		logger.GetLogger(),
	)

	return &launchFixture{
		service:        service,
		user:           user,
		workspace:      workspace,
		schedule:       schedule,
		workspaceStore: workspaceStore,
		scheduleLinks:  scheduleLinks,
		dispatcher:     dispatcher,
		recorder:       recorder,
		audit:          audit,
	}
}

func activeProvider(name string) *providers.Provider {
	return &providers.Provider{
		ID:           uuid.New(),
		Name:         name,
		ProviderType: providers.ProviderTypeWebhookAutomation,
		WebhookURL:   "https://hooks.example.com/" + name,
		AuthMethod:   providers.AuthMethodNone,
		IsActive:     true,
	}
}

func Test_Launch_AllProvidersAccept_WorkspaceScheduled(t *testing.T) {
	providerList := []*providers.Provider{
		activeProvider("first"), activeProvider("second"), activeProvider("third"),
	}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, nil)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.True(t, result.Launched)
	assert.Equal(t, workspaces_models.WorkspaceStatusScheduled, result.Status)
	assert.Len(t, result.Outcomes, len(providerList))

	assert.Equal(
		t,
		workspaces_models.WorkspaceStatusScheduled,
		fixture.workspaceStore.statusUpdates[fixture.workspace.ID],
	)
}

func Test_Launch_OutcomeOrderMatchesProviderOrder(t *testing.T) {
	providerList := []*providers.Provider{
		activeProvider("first"), activeProvider("second"), activeProvider("third"),
	}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, nil)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	for i, provider := range providerList {
		assert.Equal(t, provider.ID, result.Outcomes[i].ProviderID)
	}
}

func Test_Launch_OneProviderFails_WorkspaceStaysDraft(t *testing.T) {
	providerList := []*providers.Provider{
		activeProvider("first"), activeProvider("second"), activeProvider("third"),
	}
	failing := map[uuid.UUID]bool{providerList[1].ID: true}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, failing)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.False(t, result.Launched)
	assert.Equal(t, workspaces_models.WorkspaceStatusDraft, result.Status)

	// the full outcome list still comes back, one entry per provider
	assert.Len(t, result.Outcomes, len(providerList))
	assert.True(t, result.Outcomes[0].Success)
	assert.False(t, result.Outcomes[1].Success)
	assert.True(t, result.Outcomes[2].Success)

	assert.Empty(t, fixture.workspaceStore.statusUpdates)
}

func Test_Launch_EveryOutcomeIsRecorded(t *testing.T) {
	providerList := []*providers.Provider{activeProvider("first"), activeProvider("second")}
	failing := map[uuid.UUID]bool{providerList[0].ID: true}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, failing)

	_, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.Len(t, fixture.recorder.recorded, len(providerList))
}

func Test_Launch_NonDraftWorkspace_InvalidStateWithoutDispatch(t *testing.T) {
	providerList := []*providers.Provider{activeProvider("first")}
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusScheduled, providerList, nil,
	)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidWorkspaceState)
	assert.Empty(t, fixture.dispatcher.dispatched)
}

func Test_Launch_NoActiveProviders_FailsFast(t *testing.T) {
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, nil, nil)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoActiveProviders)
	assert.Empty(t, fixture.dispatcher.dispatched)
}

func Test_Launch_UnknownWorkspace_NotFound(t *testing.T) {
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusDraft,
		[]*providers.Provider{activeProvider("first")},
		nil,
	)

	_, err := fixture.service.Launch(fixture.user, uuid.New())

	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func Test_Launch_ForeignWorkspace_NotFound(t *testing.T) {
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusDraft,
		[]*providers.Provider{activeProvider("first")},
		nil,
	)

	intruder := &users_models.User{ID: uuid.New(), Email: "other@example.com"}

	_, err := fixture.service.Launch(intruder, fixture.workspace.ID)

	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	assert.Empty(t, fixture.dispatcher.dispatched)
}

func Test_Launch_PartialLoad_AbortsBeforeDispatch(t *testing.T) {
	providerList := []*providers.Provider{activeProvider("first")}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, nil)

	// dangling product reference that no store can resolve
	fixture.service.productLinks = &fakeProductLinks{
		links: []*workspaces_models.WorkspaceProduct{
			{ID: uuid.New(), WorkspaceID: fixture.workspace.ID, ProductID: uuid.New()},
		},
	}

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPartialLoad)
	assert.Empty(t, fixture.dispatcher.dispatched)
	assert.Empty(t, fixture.workspaceStore.statusUpdates)
}

func Test_Launch_FailedLaunch_WritesAuditEntry(t *testing.T) {
	providerList := []*providers.Provider{activeProvider("first")}
	failing := map[uuid.UUID]bool{providerList[0].ID: true}
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, providerList, failing)

	_, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	require.Len(t, fixture.audit.messages, 1)
	assert.Contains(t, fixture.audit.messages[0], "Launch failed")
}

func Test_GetCampaignDetails_ReturnsAssembledPayload(t *testing.T) {
	fixture := newLaunchFixture(workspaces_models.WorkspaceStatusDraft, nil, nil)

	details, err := fixture.service.GetCampaignDetails(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.Equal(t, "launch_workspace", details.Action)
	assert.Equal(t, fixture.workspace.ID, details.Workspace.ID)
	assert.Len(t, details.Products, 1)
	assert.Len(t, details.Content.Social, 1)
	assert.Empty(t, details.Content.Images)
	assert.Len(t, details.Schedules, 1)
}

func Test_Launch_FailedLaunch_MarksPendingSchedulesFailed(t *testing.T) {
	rejecting := activeProvider("rejecting")
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusDraft,
		[]*providers.Provider{activeProvider("accepting"), rejecting},
		map[uuid.UUID]bool{rejecting.ID: true},
	)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.False(t, result.Launched)
	assert.Equal(
		t,
		workspaces_models.ScheduleStatusFailed,
		fixture.scheduleLinks.statusUpdates[fixture.schedule.ID],
	)
}

func Test_Launch_SuccessfulRetry_ResetsFailedSchedules(t *testing.T) {
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusDraft,
		[]*providers.Provider{activeProvider("accepting")},
		nil,
	)
	fixture.schedule.Status = workspaces_models.ScheduleStatusFailed

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.True(t, result.Launched)
	assert.Equal(
		t,
		workspaces_models.ScheduleStatusPending,
		fixture.scheduleLinks.statusUpdates[fixture.schedule.ID],
	)
}

func Test_Launch_SuccessfulLaunch_LeavesPendingSchedulesUntouched(t *testing.T) {
	fixture := newLaunchFixture(
		workspaces_models.WorkspaceStatusDraft,
		[]*providers.Provider{activeProvider("accepting")},
		nil,
	)

	result, err := fixture.service.Launch(fixture.user, fixture.workspace.ID)

	require.NoError(t, err)
	assert.True(t, result.Launched)
	assert.Empty(t, fixture.scheduleLinks.statusUpdates)
}
