package wizard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func completeForm() Form {
	contentID := uuid.New()

	return NewForm().
		WithName("Summer Drop").
		WithProducts([]uuid.UUID{uuid.New()}).
		WithContent(ContentSelection{Social: []uuid.UUID{contentID}}).
		WithSchedules([]ScheduleEntry{{
			Platform:    "instagram",
			ContentID:   contentID,
			ScheduledAt: time.Now().Add(24 * time.Hour),
		}})
}

func Test_NewForm_StartsAtDetailsStep(t *testing.T) {
	assert.Equal(t, StepDetails, NewForm().Step)
}

func Test_CanProceed_DetailsStep_RequiresNameAndProduct(t *testing.T) {
	form := NewForm()
	assert.False(t, form.CanProceed())

	form = form.WithName("Summer Drop")
	assert.False(t, form.CanProceed())

	form = form.WithProducts([]uuid.UUID{uuid.New()})
	assert.True(t, form.CanProceed())
}

func Test_CanProceed_ContentStep_EitherKindSuffices(t *testing.T) {
	form := completeForm().NextStep()
	assert.Equal(t, StepContent, form.Step)

	assert.True(t, form.WithContent(ContentSelection{
		Social: []uuid.UUID{uuid.New()},
	}).CanProceed())

	assert.True(t, form.WithContent(ContentSelection{
		Image: []uuid.UUID{uuid.New()},
	}).CanProceed())

	assert.False(t, form.WithContent(ContentSelection{}).CanProceed())
}

func Test_NextStep_GatedByPredicate(t *testing.T) {
	form := NewForm()

	// predicate fails, step does not move
	assert.Equal(t, StepDetails, form.NextStep().Step)

	form = form.WithName("Summer Drop").WithProducts([]uuid.UUID{uuid.New()})
	assert.Equal(t, StepContent, form.NextStep().Step)
}

func Test_NextStep_StopsAtReview(t *testing.T) {
	form := completeForm()
	for i := 0; i < 10; i++ {
		form = form.NextStep()
	}

	assert.Equal(t, StepReview, form.Step)
}

func Test_PreviousStep_NeverGated(t *testing.T) {
	form := NewForm()
	form.Step = StepSchedule

	form = form.PreviousStep()
	assert.Equal(t, StepContent, form.Step)

	form = form.PreviousStep()
	assert.Equal(t, StepDetails, form.Step)

	// already at the first step
	assert.Equal(t, StepDetails, form.PreviousStep().Step)
}

func Test_Mutations_DoNotChangeOriginal(t *testing.T) {
	original := NewForm()
	_ = original.WithName("changed").NextStep()

	assert.Empty(t, original.Name)
	assert.Equal(t, StepDetails, original.Step)
}

func Test_IsComplete_AllPredicatesMustHold(t *testing.T) {
	assert.True(t, completeForm().IsComplete())

	assert.False(t, completeForm().WithSchedules(nil).IsComplete())
	assert.False(t, completeForm().WithName("").IsComplete())
	assert.False(t, completeForm().WithContent(ContentSelection{}).IsComplete())
}
