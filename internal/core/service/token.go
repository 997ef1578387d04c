package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/ports"
)

// DefaultTokenTTL is applied when no expiry is configured.
const DefaultTokenTTL = 24 * time.Hour

// JWTTokens issues and verifies HS256-signed bearer tokens carrying
// {uid, email, role} plus issued-at and expiry claims. Issuance and
// verification are pure functions of the input, the secret, and the clock.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokens(secret string, ttl time.Duration) *JWTTokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl}
}

func (t *JWTTokens) Issue(uid, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":   uid,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *JWTTokens) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = domain.RoleUser
	}

	return &ports.TokenClaims{UID: uid, Email: email, Role: role}, nil
}

// VerifierChain tries each verifier in order; the first success wins and
// every verifier failing yields domain.ErrInvalidToken. It is used to keep
// tokens signed with a previous secret valid across a rotation.
type VerifierChain []ports.TokenVerifier

func (vc VerifierChain) Verify(token string) (*ports.TokenClaims, error) {
	for _, v := range vc {
		if claims, err := v.Verify(token); err == nil {
			return claims, nil
		}
	}
	return nil, domain.ErrInvalidToken
}
