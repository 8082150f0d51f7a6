// Package wizard holds the pure form state for the four-step campaign
// builder. It carries no persistence: the form exists so an incomplete
// workspace can never be submitted, not to re-validate saved rows.
package wizard

import (
	"time"

	"github.com/google/uuid"
)

type Step int

const (
	StepDetails Step = iota + 1
	StepContent
	StepSchedule
	StepReview

	firstStep = StepDetails
	lastStep  = StepReview
)

type ScheduleEntry struct {
	Platform    string    `json:"platform"`
	ContentID   uuid.UUID `json:"contentId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type ContentSelection struct {
	Social []uuid.UUID `json:"social"`
	Image  []uuid.UUID `json:"image"`
}

// Form is an immutable wizard state; every mutation returns a new value.
type Form struct {
	Step             Step             `json:"step"`
	Name             string           `json:"name"`
	SelectedProducts []uuid.UUID      `json:"selectedProducts"`
	SelectedContent  ContentSelection `json:"selectedContent"`
	Schedules        []ScheduleEntry  `json:"schedules"`
}

func NewForm() Form {
	return Form{Step: firstStep}
}

func (f Form) WithName(name string) Form {
	f.Name = name
	return f
}

func (f Form) WithProducts(productIDs []uuid.UUID) Form {
	f.SelectedProducts = productIDs
	return f
}

func (f Form) WithContent(selection ContentSelection) Form {
	f.SelectedContent = selection
	return f
}

func (f Form) WithSchedules(schedules []ScheduleEntry) Form {
	f.Schedules = schedules
	return f
}

// CanProceed reports whether the current step's gating predicate holds.
func (f Form) CanProceed() bool {
	switch f.Step {
	case StepDetails:
		return f.Name != "" && len(f.SelectedProducts) > 0
	case StepContent:
		return len(f.SelectedContent.Social) > 0 || len(f.SelectedContent.Image) > 0
	case StepSchedule:
		return len(f.Schedules) > 0
	default:
		return true
	}
}

// NextStep advances only when the current step's predicate holds;
// otherwise the form is returned unchanged.
func (f Form) NextStep() Form {
	if f.Step < lastStep && f.CanProceed() {
		f.Step++
	}

	return f
}

// PreviousStep always succeeds; backward navigation is never gated.
func (f Form) PreviousStep() Form {
	if f.Step > firstStep {
		f.Step--
	}

	return f
}

// IsComplete reports whether every gating step is satisfied, i.e. the
// form may be submitted from the review step.
func (f Form) IsComplete() bool {
	for step := firstStep; step < lastStep; step++ {
		probe := f
		probe.Step = step

		if !probe.CanProceed() {
			return false
		}
	}

	return true
}
