package campaigns

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")

	ErrInvalidWorkspaceState = errors.New("only draft workspaces can be launched")

	ErrNoActiveProviders = errors.New("no active campaign providers configured")

	ErrPartialLoad = errors.New("workspace references items that could not be loaded")
)

// PartialLoadError reports which referenced ids did not resolve to a
// stored item. A launch never proceeds with a partially loaded payload.
type PartialLoadError struct {
	MissingProducts []uuid.UUID
	MissingSocial   []uuid.UUID
	MissingImages   []uuid.UUID
}

func (e *PartialLoadError) Error() string {
	return fmt.Sprintf(
		"%s: %d products, %d social posts, %d images missing",
		ErrPartialLoad.Error(),
		len(e.MissingProducts), len(e.MissingSocial), len(e.MissingImages),
	)
}

func (e *PartialLoadError) Unwrap() error {
	return ErrPartialLoad
}
