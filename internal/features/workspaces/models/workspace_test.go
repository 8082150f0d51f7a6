package workspaces_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CanTransitionTo_ForwardOnly(t *testing.T) {
	assert.True(t, WorkspaceStatusDraft.CanTransitionTo(WorkspaceStatusScheduled))
	assert.True(t, WorkspaceStatusScheduled.CanTransitionTo(WorkspaceStatusActive))
	assert.True(t, WorkspaceStatusActive.CanTransitionTo(WorkspaceStatusCompleted))
}

func Test_CanTransitionTo_NoSkippingOrBacktracking(t *testing.T) {
	assert.False(t, WorkspaceStatusDraft.CanTransitionTo(WorkspaceStatusActive))
	assert.False(t, WorkspaceStatusDraft.CanTransitionTo(WorkspaceStatusCompleted))
	assert.False(t, WorkspaceStatusScheduled.CanTransitionTo(WorkspaceStatusDraft))
	assert.False(t, WorkspaceStatusActive.CanTransitionTo(WorkspaceStatusScheduled))
	assert.False(t, WorkspaceStatusCompleted.CanTransitionTo(WorkspaceStatusActive))
}

func Test_WorkspaceStatus_IsValid(t *testing.T) {
	for _, status := range []WorkspaceStatus{
		WorkspaceStatusDraft, WorkspaceStatusScheduled,
		WorkspaceStatusActive, WorkspaceStatusCompleted,
	} {
		assert.True(t, status.IsValid())
	}

	assert.False(t, WorkspaceStatus("archived").IsValid())
}

func Test_ContentType_IsValid(t *testing.T) {
	assert.True(t, ContentTypeSocial.IsValid())
	assert.True(t, ContentTypeImage.IsValid())
	assert.False(t, ContentType("video").IsValid())
}
