package jwt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidClaims = errors.New("token claims are missing or invalid")
	ErrTokenRevoked  = errors.New("token has been revoked")
)

// Claims is the subset of an access token the application reads.
type Claims struct {
	EmployeeID string
	Role       employee.Role
	ExpiresAt  time.Time
}

type Service interface {
	GenerateAccessToken(employeeID string, role employee.Role) (token string, expiresAt int64, err error)
	// Verify checks signature, expiry, token type and revocation.
	Verify(token string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 NewTokenAuth(secretKey),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

// NewTokenAuth builds the HS256 verifier shared by the API and the dashboard.
func NewTokenAuth(secretKey string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second))
}

func (j *JWTService) GenerateAccessToken(employeeID string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) Verify(tokenString string) (Claims, error) {
	if j.IsTokenRevoked(tokenString) {
		return Claims{}, ErrTokenRevoked
	}
	return VerifyAccessToken(j.tokenAuth, tokenString)
}

// VerifyAccessToken validates tokenString against ja and extracts its claims.
func VerifyAccessToken(ja *jwtauth.JWTAuth, tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(ja, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, err
	}
	return claimsFromMap(claims, token.Expiration())
}

// ClaimsFromContext reads the claims jwtauth.Verifier stored on ctx.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}
	if token == nil {
		return Claims{}, ErrInvalidClaims
	}
	return claimsFromMap(claims, token.Expiration())
}

func claimsFromMap(claims map[string]interface{}, exp time.Time) (Claims, error) {
	tokenType, _ := claims["type"].(string)
	if tokenType != "access" {
		return Claims{}, ErrInvalidClaims
	}
	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)
	if employeeID == "" || !employee.Role(role).Valid() {
		return Claims{}, ErrInvalidClaims
	}
	return Claims{
		EmployeeID: employeeID,
		Role:       employee.Role(role),
		ExpiresAt:  exp,
	}, nil
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().Unix()
	j.revokedTokens[token] = now

	// Entries older than one token lifetime can no longer verify anyway.
	if ttl, err := time.ParseDuration(j.accessTokenExpirationTime); err == nil {
		cutoff := now - int64(ttl.Seconds())
		for t, revokedAt := range j.revokedTokens {
			if revokedAt < cutoff {
				delete(j.revokedTokens, t)
			}
		}
	}
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
