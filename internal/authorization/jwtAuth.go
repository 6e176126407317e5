package authz

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/wurt83ow/maintracker/internal/config"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/normalize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CookieName = "jwt-token"
	tokenTTL   = 12 * time.Hour
)

var keyPrincipal models.Key = "principal"

type CustomClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

type Log interface {
	Info(string, ...zapcore.Field)
}

type Storage interface {
	GetUser(context.Context, string) (models.User, error)
}

type JWTAuthz struct {
	jwtSigningKey    []byte
	log              Log
	jwtSigningMethod *jwt.SigningMethodHMAC
	defaultCookie    http.Cookie
	storage          Storage
	now              func() time.Time
}

func NewJWTAuthz(storage Storage, signingKey string, log Log) *JWTAuthz {
	return &JWTAuthz{
		jwtSigningKey:    []byte(config.GetAsString("JWT_SIGNING_KEY", signingKey)),
		log:              log,
		jwtSigningMethod: jwt.SigningMethodHS256,
		storage:          storage,
		now:              time.Now,
		defaultCookie: http.Cookie{
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// JWTAuthzMiddleware verifies a valid JWT exists in the cookie or the
// Authorization header and that its user still exists. The stored role
// wins over the one in the token.
func (j *JWTAuthz) JWTAuthzMiddleware(log Log) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			var (
				principal models.Principal
				err       error
			)

			if jwtCookie, cerr := r.Cookie(CookieName); cerr == nil && jwtCookie.Value != "" {
				principal, err = j.DecodeJWTToUser(jwtCookie.Value)
				if err != nil {
					log.Info("Error occurred decoding JWT from cookie", zap.Error(err))
				}
			}

			if principal.Username == "" {
				if jwtHeader := bearer(r.Header.Get("Authorization")); jwtHeader != "" {
					principal, err = j.DecodeJWTToUser(jwtHeader)
					if err != nil {
						log.Info("Error occurred decoding token from header", zap.Error(err))
					}
				}
			}

			if principal.Username == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := j.storage.GetUser(r.Context(), principal.Username)
			if err != nil {
				log.Info("User not found in storage", zap.String("user", principal.Username), zap.Error(err))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			principal.Role = user.Role

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireMutator rejects principals whose role may not change events.
func RequireMutator(next http.Handler) http.Handler {
	return guard(next, models.Principal.CanMutate)
}

// RequireAdmin rejects everyone but administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return guard(next, models.Principal.IsAdmin)
}

func guard(next http.Handler, allowed func(models.Principal) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !allowed(p) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, p)
}

func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(keyPrincipal).(models.Principal)

	return p, ok
}

func (j *JWTAuthz) CreateJWTTokenForUser(user models.User) string {
	claims := CustomClaims{
		Username: normalize.Username(user.Username),
		Role:     normalize.Role(user.Role),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  j.now().Unix(),
			ExpiresAt: j.now().Add(tokenTTL).Unix(),
		},
	}

	// Encode to token string
	tokenString, err := jwt.NewWithClaims(j.jwtSigningMethod, claims).SignedString(j.jwtSigningKey)
	if err != nil {
		j.log.Info("Error occurred generating JWT", zap.Error(err))
		return ""
	}

	return tokenString
}

func (j *JWTAuthz) DecodeJWTToUser(token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, errors.New("empty token")
	}

	decodedToken, err := jwt.ParseWithClaims(token, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if j.jwtSigningMethod != token.Method {
			// Check our method hasn't changed since issuance
			return nil, errors.New("signing method mismatch")
		}

		return j.jwtSigningKey, nil
	})
	if err != nil {
		return models.Principal{}, err
	}

	// There's two parts. We might decode it successfully but it might
	// be the case we aren't Valid so you must check both
	if decClaims, ok := decodedToken.Claims.(*CustomClaims); ok && decodedToken.Valid {
		return models.Principal{Username: decClaims.Username, Role: decClaims.Role}, nil
	}

	return models.Principal{}, errors.New("invalid token")
}

func (j *JWTAuthz) AuthCookie(name string, token string) *http.Cookie {
	d := j.defaultCookie
	d.Name = name
	d.Value = token
	d.Path = "/"

	return &d
}

// ExpiredCookie clears the named cookie on the client.
func (j *JWTAuthz) ExpiredCookie(name string) *http.Cookie {
	d := j.AuthCookie(name, "")
	d.MaxAge = -1

	return d
}

func bearer(h string) string {
	const prefix = "Bearer "
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}

	return h
}
