package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
)

// Storage keys, shared with the web console.
const (
	TokenKey = "authToken"
	UserKey  = "authUser"
)

var (
	// ErrNoSession is returned when no token is stored.
	ErrNoSession = errors.New("not logged in")
	// ErrEmptyToken is returned by Login when the session carries no token.
	ErrEmptyToken = errors.New("session token is empty")
)

// Manager reads and writes the session through a KeyValueStore.
type Manager struct {
	store domain.KeyValueStore
	log   zerolog.Logger
}

// New returns a Manager backed by store.
func New(store domain.KeyValueStore, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Login persists the token and profile.
func (m *Manager) Login(s domain.Session) error {
	if s.Token == "" {
		return ErrEmptyToken
	}
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.store.SetItem(TokenKey, s.Token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := m.store.SetItem(UserKey, string(user)); err != nil {
		// never leave a token without its profile
		_ = m.store.RemoveItem(TokenKey)
		return fmt.Errorf("store user: %w", err)
	}
	m.log.Info().Str("user", s.User.Email).Str("token", Fingerprint(s.Token)).Msg("session stored")
	return nil
}

// Logout removes the stored session.
func (m *Manager) Logout() error {
	return m.Clear()
}

// Clear drops token and profile in one write.
func (m *Manager) Clear() error {
	if err := m.store.RemoveItem(TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Debug().Msg("session cleared")
	return nil
}

// Token returns the stored token, or "" when none is stored or the store
// cannot be read.
func (m *Manager) Token() string {
	tok, ok, err := m.store.GetItem(TokenKey)
	if err != nil {
		m.log.Warn().Err(err).Msg("read session token")
		return ""
	}
	if !ok {
		return ""
	}
	return tok
}

// Current returns the stored session.
func (m *Manager) Current() (domain.Session, error) {
	tok, ok, err := m.store.GetItem(TokenKey)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok || tok == "" {
		return domain.Session{}, ErrNoSession
	}
	s := domain.Session{Token: tok}

	raw, ok, err := m.store.GetItem(UserKey)
	if err != nil {
		return domain.Session{}, err
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.User); err != nil {
			return domain.Session{}, fmt.Errorf("decode stored user: %w", err)
		}
	}
	return s, nil
}

// ExpiresAt reads the exp claim of the stored token without verifying its
// signature. ok is false when there is no token or it is not a JWT with exp.
func (m *Manager) ExpiresAt() (time.Time, bool) {
	return TokenExpiry(m.Token())
}

// TokenExpiry reads the exp claim of token without verifying it.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Fingerprint returns a short hex digest of token for display and logs.
//
// It hashes with SHA-256 and truncates to 6 bytes (12 hex chars).
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}

// Compile-time assertion that Manager implements domain.TokenSource.
var _ domain.TokenSource = (*Manager)(nil)
