package providers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"time"

	"promoforge-backend/internal/util/encryption"

	"github.com/google/uuid"
)

type ProviderType string

const (
	ProviderTypeWebhookAutomation ProviderType = "webhook-automation"
)

func (t ProviderType) IsValid() bool {
	return t == ProviderTypeWebhookAutomation
}

type AuthMethod string

const (
	AuthMethodNone   AuthMethod = "none"
	AuthMethodBasic  AuthMethod = "basic"
	AuthMethodHeader AuthMethod = "header"
	AuthMethodJWT    AuthMethod = "jwt"
)

func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodNone, AuthMethodBasic, AuthMethodHeader, AuthMethodJWT:
		return true
	default:
		return false
	}
}

type BasicAuthSettings struct {
	ProviderID uuid.UUID `json:"providerId" gorm:"primaryKey;column:provider_id;type:uuid"`
	Username   string    `json:"username"   gorm:"column:username;not null;type:varchar(255)"`
	Password   string    `json:"password"   gorm:"column:password;not null;type:text"`
}

func (BasicAuthSettings) TableName() string {
	return "provider_basic_auth"
}

func (s *BasicAuthSettings) Update(incoming *BasicAuthSettings) {
	s.Username = incoming.Username
	s.Password = incoming.Password
}

type HeaderAuthSettings struct {
	ProviderID  uuid.UUID `json:"providerId"  gorm:"primaryKey;column:provider_id;type:uuid"`
	HeaderKey   string    `json:"headerKey"   gorm:"column:header_key;not null;type:varchar(255)"`
	HeaderValue string    `json:"headerValue" gorm:"column:header_value;not null;type:text"`
}

func (HeaderAuthSettings) TableName() string {
	return "provider_header_auth"
}

func (s *HeaderAuthSettings) Update(incoming *HeaderAuthSettings) {
	s.HeaderKey = incoming.HeaderKey
	s.HeaderValue = incoming.HeaderValue
}

type JWTAuthSettings struct {
	ProviderID uuid.UUID `json:"providerId" gorm:"primaryKey;column:provider_id;type:uuid"`
	Token      string    `json:"token"      gorm:"column:token;not null;type:text"`
}

func (JWTAuthSettings) TableName() string {
	return "provider_jwt_auth"
}

func (s *JWTAuthSettings) Update(incoming *JWTAuthSettings) {
	s.Token = incoming.Token
}

// Provider is an externally configured automation endpoint that receives
// launched campaign payloads. Auth settings form a closed tagged union
// keyed by AuthMethod; only the variant matching the declared method is
// ever populated.
type Provider struct {
	ID                uuid.UUID    `json:"id"                gorm:"column:id;primaryKey;type:uuid"`
	UserID            uuid.UUID    `json:"userId"            gorm:"column:user_id;not null;type:uuid;index"`
	Name              string       `json:"name"              gorm:"column:name;not null;type:varchar(255)"`
	ProviderType      ProviderType `json:"providerType"      gorm:"column:provider_type;not null;type:varchar(50)"`
	WebhookURL        string       `json:"webhookUrl"        gorm:"column:webhook_url;not null;type:text"`
	AuthMethod        AuthMethod   `json:"authMethod"        gorm:"column:auth_method;not null;type:varchar(20)"`
	IsActive          bool         `json:"isActive"          gorm:"column:is_active;not null"`
	LastDispatchError *string      `json:"lastDispatchError" gorm:"column:last_dispatch_error;type:text"`
	CreatedAt         time.Time    `json:"createdAt"         gorm:"column:created_at"`
	UpdatedAt         time.Time    `json:"updatedAt"         gorm:"column:updated_at"`

	BasicAuth  *BasicAuthSettings  `json:"basicAuth,omitempty"  gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	HeaderAuth *HeaderAuthSettings `json:"headerAuth,omitempty" gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	JWTAuth    *JWTAuthSettings    `json:"jwtAuth,omitempty"    gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

func (Provider) TableName() string {
	return "campaign_providers"
}

// Validate enforces the configuration contract at save time: a parseable
// webhook URL and the settings variant required by the declared auth
// method. A provider that fails validation can never be stored active,
// so dispatch-time code may assume structural completeness.
func (p *Provider) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}

	if !p.ProviderType.IsValid() {
		return fmt.Errorf("unknown provider type: %s", p.ProviderType)
	}

	if p.WebhookURL == "" {
		return errors.New("webhook URL is required")
	}

	parsed, err := url.ParseRequestURI(p.WebhookURL)
	if err != nil {
		return fmt.Errorf("webhook URL is not a valid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("webhook URL must use http or https")
	}

	if !p.AuthMethod.IsValid() {
		return fmt.Errorf("unknown auth method: %s", p.AuthMethod)
	}

	switch p.AuthMethod {
	case AuthMethodNone:
	case AuthMethodBasic:
		if p.BasicAuth == nil || p.BasicAuth.Username == "" || p.BasicAuth.Password == "" {
			return errors.New("basic auth requires username and password")
		}
	case AuthMethodHeader:
		if p.HeaderAuth == nil || p.HeaderAuth.HeaderKey == "" || p.HeaderAuth.HeaderValue == "" {
			return errors.New("header auth requires header key and value")
		}
	case AuthMethodJWT:
		if p.JWTAuth == nil || p.JWTAuth.Token == "" {
			return errors.New("jwt auth requires a token")
		}
	}

	return nil
}

// BuildHeaders returns the transport headers for one outbound request.
// Deterministic, no I/O: the only failure mode is undecryptable stored
// secrets. Blank basic credentials soft-fail by omitting the
// Authorization header; save-time validation should have rejected that
// state already.
func (p *Provider) BuildHeaders(
	encryptor encryption.FieldEncryptor,
) (map[string]string, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	switch p.AuthMethod {
	case AuthMethodNone:
	case AuthMethodBasic:
		if p.BasicAuth != nil && p.BasicAuth.Username != "" && p.BasicAuth.Password != "" {
			password, err := encryptor.Decrypt(p.ID, p.BasicAuth.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to decrypt basic auth password: %w", err)
			}

			credentials := p.BasicAuth.Username + ":" + password
			encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
			headers["Authorization"] = "Basic " + encoded
		}
	case AuthMethodHeader:
		if p.HeaderAuth != nil && p.HeaderAuth.HeaderKey != "" {
			value, err := encryptor.Decrypt(p.ID, p.HeaderAuth.HeaderValue)
			if err != nil {
				return nil, fmt.Errorf("failed to decrypt header value: %w", err)
			}

			headers[p.HeaderAuth.HeaderKey] = value
		}
	case AuthMethodJWT:
		if p.JWTAuth != nil && p.JWTAuth.Token != "" {
			token, err := encryptor.Decrypt(p.ID, p.JWTAuth.Token)
			if err != nil {
				return nil, fmt.Errorf("failed to decrypt token: %w", err)
			}

			headers["Authorization"] = "Bearer " + token
		}
	}

	return headers, nil
}

// EncryptSensitiveData encrypts the secret half of the populated auth
// variant in place. Already-encrypted values pass through untouched, so
// it is safe to call on every save.
func (p *Provider) EncryptSensitiveData(encryptor encryption.FieldEncryptor) error {
	if p.BasicAuth != nil && p.BasicAuth.Password != "" {
		encrypted, err := encryptor.Encrypt(p.ID, p.BasicAuth.Password)
		if err != nil {
			return fmt.Errorf("failed to encrypt basic auth password: %w", err)
		}
		p.BasicAuth.Password = encrypted
	}

	if p.HeaderAuth != nil && p.HeaderAuth.HeaderValue != "" {
		encrypted, err := encryptor.Encrypt(p.ID, p.HeaderAuth.HeaderValue)
		if err != nil {
			return fmt.Errorf("failed to encrypt header value: %w", err)
		}
		p.HeaderAuth.HeaderValue = encrypted
	}

	if p.JWTAuth != nil && p.JWTAuth.Token != "" {
		encrypted, err := encryptor.Encrypt(p.ID, p.JWTAuth.Token)
		if err != nil {
			return fmt.Errorf("failed to encrypt token: %w", err)
		}
		p.JWTAuth.Token = encrypted
	}

	return nil
}

func (p *Provider) HideSensitiveData() {
	if p.BasicAuth != nil {
		p.BasicAuth.Password = ""
	}

	if p.HeaderAuth != nil {
		p.HeaderAuth.HeaderValue = ""
	}

	if p.JWTAuth != nil {
		p.JWTAuth.Token = ""
	}
}

func (p *Provider) Update(incoming *Provider) {
	p.Name = incoming.Name
	p.ProviderType = incoming.ProviderType
	p.WebhookURL = incoming.WebhookURL
	p.AuthMethod = incoming.AuthMethod
	p.IsActive = incoming.IsActive

	switch p.AuthMethod {
	case AuthMethodBasic:
		if p.BasicAuth != nil && incoming.BasicAuth != nil {
			p.BasicAuth.Update(incoming.BasicAuth)
		} else {
			p.BasicAuth = incoming.BasicAuth
		}
	case AuthMethodHeader:
		if p.HeaderAuth != nil && incoming.HeaderAuth != nil {
			p.HeaderAuth.Update(incoming.HeaderAuth)
		} else {
			p.HeaderAuth = incoming.HeaderAuth
		}
	case AuthMethodJWT:
		if p.JWTAuth != nil && incoming.JWTAuth != nil {
			p.JWTAuth.Update(incoming.JWTAuth)
		} else {
			p.JWTAuth = incoming.JWTAuth
		}
	}
}
