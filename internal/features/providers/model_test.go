package providers

import (
	"encoding/base64"
	"testing"

	"promoforge-backend/internal/util/encryption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEncryptor = encryption.NewSecretKeyFieldEncryptor(
	"0123456789abcdef0123456789abcdef",
)

func validProvider(method AuthMethod) *Provider {
	provider := &Provider{
		Name:         "n8n automation",
		ProviderType: ProviderTypeWebhookAutomation,
		WebhookURL:   "https://hooks.example.com/campaign",
		AuthMethod:   method,
	}

	switch method {
	case AuthMethodBasic:
		provider.BasicAuth = &BasicAuthSettings{Username: "bot", Password: "secret"}
	case AuthMethodHeader:
		provider.HeaderAuth = &HeaderAuthSettings{
			HeaderKey:   "X-Api-Key",
			HeaderValue: "api-key-value",
		}
	case AuthMethodJWT:
		provider.JWTAuth = &JWTAuthSettings{Token: "eyJhbGciOiJIUzI1NiJ9.payload.sig"}
	}

	return provider
}

func Test_Validate_ValidConfigurations_NoError(t *testing.T) {
	for _, method := range []AuthMethod{
		AuthMethodNone, AuthMethodBasic, AuthMethodHeader, AuthMethodJWT,
	} {
		assert.NoError(t, validProvider(method).Validate(), string(method))
	}
}

func Test_Validate_MissingName_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodNone)
	provider.Name = ""

	assert.Error(t, provider.Validate())
}

func Test_Validate_MalformedURL_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodNone)
	provider.WebhookURL = "not a url"

	assert.Error(t, provider.Validate())
}

func Test_Validate_NonHTTPScheme_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodNone)
	provider.WebhookURL = "ftp://hooks.example.com/campaign"

	assert.Error(t, provider.Validate())
}

func Test_Validate_BasicAuthWithoutCredentials_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodBasic)
	provider.BasicAuth.Password = ""

	assert.Error(t, provider.Validate())

	provider.BasicAuth = nil
	assert.Error(t, provider.Validate())
}

func Test_Validate_HeaderAuthWithoutKey_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodHeader)
	provider.HeaderAuth.HeaderKey = ""

	assert.Error(t, provider.Validate())
}

func Test_Validate_JWTAuthWithoutToken_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodJWT)
	provider.JWTAuth.Token = ""

	assert.Error(t, provider.Validate())
}

func Test_BuildHeaders_NoAuth_OnlyContentType(t *testing.T) {
	headers, err := validProvider(AuthMethodNone).BuildHeaders(testEncryptor)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, headers)
}

func Test_BuildHeaders_BasicAuth_EncodesCredentials(t *testing.T) {
	headers, err := validProvider(AuthMethodBasic).BuildHeaders(testEncryptor)

	require.NoError(t, err)
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("bot:secret"))
	assert.Equal(t, expected, headers["Authorization"])
	assert.Equal(t, "application/json", headers["Content-Type"])
}

func Test_BuildHeaders_BlankBasicCredentials_OmitsAuthorization(t *testing.T) {
	provider := validProvider(AuthMethodBasic)
	provider.BasicAuth.Password = ""

	headers, err := provider.BuildHeaders(testEncryptor)

	require.NoError(t, err)
	_, hasAuth := headers["Authorization"]
	assert.False(t, hasAuth)
	assert.Equal(t, "application/json", headers["Content-Type"])
}

func Test_BuildHeaders_HeaderAuth_UsesCustomKey(t *testing.T) {
	headers, err := validProvider(AuthMethodHeader).BuildHeaders(testEncryptor)

	require.NoError(t, err)
	assert.Equal(t, "api-key-value", headers["X-Api-Key"])

	_, hasAuth := headers["Authorization"]
	assert.False(t, hasAuth)
}

func Test_BuildHeaders_JWTAuth_SetsBearerToken(t *testing.T) {
	provider := validProvider(AuthMethodJWT)
	token := provider.JWTAuth.Token

	headers, err := provider.BuildHeaders(testEncryptor)

	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, headers["Authorization"])
}

func Test_BuildHeaders_IsDeterministic(t *testing.T) {
	provider := validProvider(AuthMethodJWT)

	first, err := provider.BuildHeaders(testEncryptor)
	require.NoError(t, err)

	second, err := provider.BuildHeaders(testEncryptor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_HideSensitiveData_ClearsSecrets(t *testing.T) {
	basic := validProvider(AuthMethodBasic)
	basic.HideSensitiveData()
	assert.Empty(t, basic.BasicAuth.Password)
	assert.Equal(t, "bot", basic.BasicAuth.Username)

	header := validProvider(AuthMethodHeader)
	header.HideSensitiveData()
	assert.Empty(t, header.HeaderAuth.HeaderValue)
	assert.Equal(t, "X-Api-Key", header.HeaderAuth.HeaderKey)

	jwt := validProvider(AuthMethodJWT)
	jwt.HideSensitiveData()
	assert.Empty(t, jwt.JWTAuth.Token)
}

func Test_EncryptSensitiveData_BuildHeadersDecrypts(t *testing.T) {
	provider := validProvider(AuthMethodBasic)
	provider.ID = uuid.New()

	err := provider.EncryptSensitiveData(testEncryptor)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", provider.BasicAuth.Password)

	headers, err := provider.BuildHeaders(testEncryptor)
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("bot:secret"))
	assert.Equal(t, expected, headers["Authorization"])
}

func Test_EncryptSensitiveData_IsIdempotent(t *testing.T) {
	provider := validProvider(AuthMethodHeader)
	provider.ID = uuid.New()

	require.NoError(t, provider.EncryptSensitiveData(testEncryptor))
	once := provider.HeaderAuth.HeaderValue

	require.NoError(t, provider.EncryptSensitiveData(testEncryptor))
	assert.Equal(t, once, provider.HeaderAuth.HeaderValue)

	headers, err := provider.BuildHeaders(testEncryptor)
	require.NoError(t, err)
	assert.Equal(t, "api-key-value", headers["X-Api-Key"])
}

func Test_BuildHeaders_UndecryptableSecret_ReturnsError(t *testing.T) {
	provider := validProvider(AuthMethodJWT)
	provider.ID = uuid.New()
	provider.JWTAuth.Token = "enc:not-base64:garbage"

	_, err := provider.BuildHeaders(testEncryptor)

	assert.Error(t, err)
}
