package providers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"promoforge-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(webhookURL string) *Provider {
	return &Provider{
		ID:           uuid.New(),
		Name:         "test provider",
		ProviderType: ProviderTypeWebhookAutomation,
		WebhookURL:   webhookURL,
		AuthMethod:   AuthMethodHeader,
		HeaderAuth: &HeaderAuthSettings{
			HeaderKey:   "X-Api-Key",
			HeaderValue: "api-key-value",
		},
		IsActive: true,
	}
}

func Test_Dispatch_ProviderAccepts_SuccessOutcome(t *testing.T) {
	var receivedBody map[string]any
	var receivedHeader string

	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedHeader = r.Header.Get("X-Api-Key")

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &receivedBody))

			w.WriteHeader(http.StatusOK)
		}),
	)
	defer server.Close()

	provider := testProvider(server.URL)
	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(provider, map[string]string{"action": "test_connection"})

	assert.True(t, outcome.Success)
	assert.Equal(t, provider.ID, outcome.ProviderID)
	assert.Equal(t, "payload accepted", outcome.Message)
	assert.Equal(t, "api-key-value", receivedHeader)
	assert.Equal(t, "test_connection", receivedBody["action"])
}

func Test_Dispatch_NonSuccessStatus_FailureWithStatusInMessage(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"bad credentials"}`))
		}),
	)
	defer server.Close()

	provider := testProvider(server.URL)
	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(provider, map[string]string{"action": "test_connection"})

	assert.False(t, outcome.Success)
	assert.Equal(t, provider.ID, outcome.ProviderID)
	assert.Contains(t, outcome.Message, "401")
	assert.Contains(t, outcome.Message, "bad credentials")
}

func Test_Dispatch_UnreachableProvider_FailureOutcome(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)
	server.Close()

	provider := testProvider(server.URL)
	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(provider, map[string]string{"action": "test_connection"})

	assert.False(t, outcome.Success)
	assert.NotEmpty(t, outcome.Message)
}

func Test_Dispatch_AcceptedStatus_CountsAsSuccess(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}),
	)
	defer server.Close()

	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(testProvider(server.URL), map[string]string{})

	assert.True(t, outcome.Success)
}

func Test_Dispatch_EncryptedHeaderSecret_SendsPlaintext(t *testing.T) {
	var receivedHeader string

	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedHeader = r.Header.Get("X-Api-Key")
			w.WriteHeader(http.StatusOK)
		}),
	)
	defer server.Close()

	provider := testProvider(server.URL)
	require.NoError(t, provider.EncryptSensitiveData(testEncryptor))

	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(provider, map[string]string{"action": "test_connection"})

	assert.True(t, outcome.Success)
	assert.Equal(t, "api-key-value", receivedHeader)
}

func Test_Dispatch_UndecryptableSecret_FailureWithoutRequest(t *testing.T) {
	requested := false

	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = true
		}),
	)
	defer server.Close()

	provider := testProvider(server.URL)
	provider.HeaderAuth.HeaderValue = "enc:!!!:!!!"

	dispatcher := NewDispatcher(testEncryptor, logger.GetLogger())

	outcome := dispatcher.Dispatch(provider, map[string]string{"action": "test_connection"})

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "auth headers")
	assert.False(t, requested)
}
