// Package session issues and verifies signed, time-limited session tokens
// and binds them to HTTP cookies.
//
// Tokens are HMAC-SHA256 JWTs carrying caller-supplied claims plus an
// expiration instant. Nothing is persisted server-side: validity is decided
// purely by signature and expiration at verification time, so there is no
// revocation list and no transparent refresh. The manager is a stateless
// transform and is safe for concurrent use.
package session

import (
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "token"

// Config parameterizes the manager. The environment flag is passed in
// explicitly rather than read from ambient process state, so cookie policy
// is a pure function of configuration.
type Config struct {
	// Secret is the HMAC signing key shared by token creation and verification.
	Secret string

	// TTL is the token lifetime; also used as the cookie Max-Age.
	TTL time.Duration

	// Production toggles the cookie security attributes: Secure plus
	// SameSite=None in production, not Secure plus SameSite=Lax otherwise.
	Production bool
}

// Manager creates, signs, and verifies session tokens and issues the
// matching cookies.
type Manager struct {
	cfg Config
}

// NewManager creates a session manager from the given configuration.
// The secret must be non-empty and the TTL positive.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if cfg.TTL <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl is invalid",
			fmt.Errorf("%s is not a positive duration", cfg.TTL))
	}

	return &Manager{cfg: cfg}, nil
}

// CreateToken produces a signed token embedding the given claims verbatim
// plus an expiration claim at now + TTL. No claim schema is enforced.
func (m *Manager) CreateToken(claims map[string]any) (string, error) {
	mapClaims := jwt.MapClaims{}
	for key, value := range claims {
		mapClaims[key] = value
	}
	mapClaims["exp"] = jwt.NewNumericDate(time.Now().Add(m.cfg.TTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the token's signature and expiration and returns its
// claims. Both failure modes surface as the same UnauthorizedError; expired
// tokens are never renewed transparently.
func (m *Manager) VerifyToken(tokenString string) (map[string]any, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("invalid or expired token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	return map[string]any(claims), nil
}

// IssueCookie attaches a cookie to the outgoing response. HttpOnly is always
// set; Secure and SameSite are toggled together by the environment flag, and
// Max-Age matches the configured token lifetime.
func (m *Manager) IssueCookie(w http.ResponseWriter, name string, value string) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
	}

	if m.cfg.Production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.Secure = false
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
}

// IssueSessionCookie mints a token for the given claims and attaches it to
// the response under the fixed cookie name. Returns the signed token.
func (m *Manager) IssueSessionCookie(w http.ResponseWriter, claims map[string]any) (string, error) {
	token, err := m.CreateToken(claims)
	if err != nil {
		return "", err
	}

	m.IssueCookie(w, CookieName, token)
	return token, nil
}
