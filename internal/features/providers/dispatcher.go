package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"promoforge-backend/internal/util/encryption"

	"github.com/google/uuid"
)

// DispatchOutcome is the per-provider result of one delivery attempt.
// Dispatch failures are data, never errors: a single bad provider must
// not prevent visibility into the others' results.
type DispatchOutcome struct {
	ProviderID uuid.UUID `json:"providerId"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
}

// Dispatcher sends one payload to one provider endpoint and classifies
// the response. Any 2xx counts as success; the response body is not
// interpreted — only delivery-and-acceptance is part of the contract.
type Dispatcher struct {
	httpClient *http.Client
	encryptor  encryption.FieldEncryptor
	logger     *slog.Logger
}

func NewDispatcher(encryptor encryption.FieldEncryptor, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		// an unbounded hang in one provider must not stall a launch
		httpClient: &http.Client{Timeout: 30 * time.Second},
		encryptor:  encryptor,
		logger:     logger,
	}
}

func (d *Dispatcher) Dispatch(provider *Provider, payload any) DispatchOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return d.failure(provider, fmt.Sprintf("failed to serialize payload: %s", err))
	}

	req, err := http.NewRequest(http.MethodPost, provider.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return d.failure(provider, fmt.Sprintf("invalid webhook URL: %s", err))
	}

	headers, err := provider.BuildHeaders(d.encryptor)
	if err != nil {
		return d.failure(provider, fmt.Sprintf("failed to prepare auth headers: %s", err))
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return d.failure(provider, err.Error())
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			d.logger.Error("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return d.failure(provider, fmt.Sprintf(
			"provider returned status %s, body: %s",
			resp.Status,
			string(respBody),
		))
	}

	return DispatchOutcome{
		ProviderID: provider.ID,
		Success:    true,
		Message:    "payload accepted",
	}
}

func (d *Dispatcher) failure(provider *Provider, message string) DispatchOutcome {
	d.logger.Warn("provider dispatch failed",
		"providerId", provider.ID,
		"providerName", provider.Name,
		"message", message,
	)

	return DispatchOutcome{
		ProviderID: provider.ID,
		Success:    false,
		Message:    message,
	}
}
