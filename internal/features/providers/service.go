package providers

import (
	"errors"
	"fmt"
	"time"

	audit_logs "promoforge-backend/internal/features/audit_logs"
	users_models "promoforge-backend/internal/features/users/models"
	"promoforge-backend/internal/util/encryption"

	"github.com/google/uuid"
)

type ProviderService struct {
	providerRepository *ProviderRepository
	dispatcher         *Dispatcher
	encryptor          encryption.FieldEncryptor
	auditLogService    *audit_logs.AuditLogService
}

func (s *ProviderService) SaveProvider(
	user *users_models.User,
	provider *Provider,
) error {
	if provider.ProviderType == "" {
		provider.ProviderType = ProviderTypeWebhookAutomation
	}

	if provider.AuthMethod == "" {
		provider.AuthMethod = AuthMethodNone
	}

	// invalid configurations are rejected before is_active can be set,
	// so launch-time code never sees a structurally incomplete provider
	if err := provider.Validate(); err != nil {
		return err
	}

	if provider.ID != uuid.Nil {
		existing, err := s.providerRepository.FindByID(provider.ID)
		if err != nil {
			return fmt.Errorf("failed to get provider: %w", err)
		}

		if existing.UserID != user.ID {
			return errors.New("insufficient permissions to manage this provider")
		}

		existing.Update(provider)
		existing.UpdatedAt = time.Now().UTC()

		if err := existing.EncryptSensitiveData(s.encryptor); err != nil {
			return err
		}

		if _, err := s.providerRepository.Save(existing); err != nil {
			return fmt.Errorf("failed to update provider: %w", err)
		}

		*provider = *existing
		return nil
	}

	provider.ID = uuid.New()
	provider.UserID = user.ID
	provider.CreatedAt = time.Now().UTC()
	provider.UpdatedAt = provider.CreatedAt

	// secrets are encrypted at rest, keyed by the provider id
	if err := provider.EncryptSensitiveData(s.encryptor); err != nil {
		return err
	}

	if _, err := s.providerRepository.Save(provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Campaign provider created: %s", provider.Name),
		&user.ID,
		nil,
	)

	return nil
}

func (s *ProviderService) GetProvider(
	user *users_models.User,
	id uuid.UUID,
) (*Provider, error) {
	provider, err := s.providerRepository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if provider.UserID != user.ID {
		return nil, errors.New("insufficient permissions to view this provider")
	}

	provider.HideSensitiveData()

	return provider, nil
}

func (s *ProviderService) GetProviders(user *users_models.User) ([]*Provider, error) {
	providers, err := s.providerRepository.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	for _, provider := range providers {
		provider.HideSensitiveData()
	}

	return providers, nil
}

// GetActiveProviders returns dispatch-ready providers with secrets
// intact; it is for internal launch use only and must not be exposed
// through a controller.
func (s *ProviderService) GetActiveProviders(userID uuid.UUID) ([]*Provider, error) {
	return s.providerRepository.FindActiveByUserID(userID)
}

func (s *ProviderService) DeleteProvider(user *users_models.User, id uuid.UUID) error {
	provider, err := s.providerRepository.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.UserID != user.ID {
		return errors.New("insufficient permissions to manage this provider")
	}

	if err := s.providerRepository.Delete(provider); err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Campaign provider deleted: %s", provider.Name),
		&user.ID,
		nil,
	)

	return nil
}

// TestConnection POSTs a probe action through the regular dispatch path
// so the stored configuration (URL + auth) is exercised end to end.
func (s *ProviderService) TestConnection(
	user *users_models.User,
	id uuid.UUID,
) (DispatchOutcome, error) {
	provider, err := s.providerRepository.FindByID(id)
	if err != nil {
		return DispatchOutcome{}, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.UserID != user.ID {
		return DispatchOutcome{}, errors.New(
			"insufficient permissions to test this provider",
		)
	}

	outcome := s.dispatcher.Dispatch(provider, map[string]string{
		"action": "test_connection",
	})

	s.RecordDispatchOutcome(outcome)

	return outcome, nil
}

// RecordDispatchOutcome persists the most recent delivery error on the
// provider row (cleared on success) so the UI can surface it.
func (s *ProviderService) RecordDispatchOutcome(outcome DispatchOutcome) {
	var lastError *string
	if !outcome.Success {
		lastError = &outcome.Message
	}

	// best effort; the outcome itself is already reported to the caller
	_ = s.providerRepository.UpdateLastDispatchError(outcome.ProviderID, lastError)
}
