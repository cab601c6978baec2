package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
	ErrMissingKey   = errors.New("signing secret is empty")
)

// Claims are the registered claims plus the token type. Subject holds the
// numeric user id.
type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// Pair is an access token with the refresh token that renews it.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenManager issues and verifies HS256 tokens. Access and refresh tokens
// are signed with different secrets so one can never stand in for the other.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenManager builds a TokenManager.
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, ErrMissingKey
	}
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// IssuePair signs a fresh access and refresh token for the user.
func (m *TokenManager) IssuePair(userID uint) (Pair, error) {
	access, err := m.sign(userID, TypeAccess)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.sign(userID, TypeRefresh)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// ParseAccess verifies an access token.
func (m *TokenManager) ParseAccess(token string) (*Claims, error) {
	return m.parse(token, TypeAccess)
}

// Refresh verifies a refresh token and returns a new access token for the
// same subject.
func (m *TokenManager) Refresh(refreshToken string) (string, *Claims, error) {
	claims, err := m.parse(refreshToken, TypeRefresh)
	if err != nil {
		return "", nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return "", nil, err
	}
	access, err := m.sign(userID, TypeAccess)
	if err != nil {
		return "", nil, err
	}
	return access, claims, nil
}

func (m *TokenManager) sign(userID uint, typ string) (string, error) {
	now := m.now().UTC()
	secret, ttl := m.accessSecret, m.accessTTL
	if typ == TypeRefresh {
		secret, ttl = m.refreshSecret, m.refreshTTL
	}

	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

func (m *TokenManager) parse(token, typ string) (*Claims, error) {
	secret := m.accessSecret
	if typ == TypeRefresh {
		secret = m.refreshSecret
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
