package auth

import (
	"errors"
	"time"

	autherrors "go-diamond-payroll/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type tokenClaims struct {
	UserID string
	Role   string
	Type   string
}

func (c TokenConfig) sign(claims tokenClaims, ttl time.Duration, now time.Time) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"role":    claims.Role,
		"type":    claims.Type,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}).SignedString([]byte(c.Secret))
}

func (c TokenConfig) issue(userID, role string, now time.Time) (TokenPair, error) {
	access, err := c.sign(tokenClaims{UserID: userID, Role: role, Type: tokenTypeAccess}, c.AccessTTL, now)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := c.sign(tokenClaims{UserID: userID, Role: role, Type: tokenTypeRefresh}, c.RefreshTTL, now)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(c.AccessTTL.Seconds()),
	}, nil
}

func (c TokenConfig) parse(raw string) (tokenClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(c.Secret), nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return tokenClaims{}, autherrors.ErrTokenExpired
		}
		return tokenClaims{}, autherrors.ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, autherrors.ErrInvalidToken
	}
	out := tokenClaims{}
	out.UserID, _ = mc["user_id"].(string)
	out.Role, _ = mc["role"].(string)
	out.Type, _ = mc["type"].(string)
	if out.UserID == "" {
		return tokenClaims{}, autherrors.ErrInvalidToken
	}
	return out, nil
}
