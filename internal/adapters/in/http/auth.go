package http

import (
	"fmt"
	"strings"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var jwtSigningMethod = jwt.SigningMethodHS256

// JWTConfig holds the shared secret and the expected issuer. An empty issuer
// is not checked.
type JWTConfig struct {
	Secret string
	Issuer string
}

// Claims is the identity carried by a bearer token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(cfg JWTConfig, raw string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwtSigningMethod.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtSigningMethod {
			return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Identity resolves the caller from an optional bearer token. Requests without
// an Authorization header proceed as the anonymous principal; a token that
// fails verification is rejected.
func Identity(cfg JWTConfig, log *logger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				c.Set(principalKey, kernel.Anonymous())
				return next(c)
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				return errs.NewUnauthenticatedError("missing bearer token")
			}

			claims, err := parseToken(cfg, token)
			if err != nil {
				log.Warn(c.Request().Context(), "rejected bearer token: "+err.Error())
				return errs.NewUnauthenticatedError("invalid token")
			}
			principal := kernel.NewPrincipal(claims.Subject, kernel.Role(claims.Role))
			if !principal.IsAuthenticated() {
				return errs.NewUnauthenticatedError("token has no subject")
			}

			c.Set(principalKey, principal)
			ctx := log.WithPrincipal(c.Request().Context(), principal.ID(), principal.Role().String())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved by Identity, or the anonymous
// principal when none was set.
func PrincipalFrom(c echo.Context) kernel.Principal {
	if p, ok := c.Get(principalKey).(kernel.Principal); ok {
		return p
	}
	return kernel.Anonymous()
}

// RequireRole admits only authenticated principals holding role.
func RequireRole(role kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if !p.IsAuthenticated() {
				return errs.NewUnauthenticatedError(c.Path())
			}
			if !p.HasRole(role) {
				return errs.NewForbiddenError(c.Path(), "role "+role.String()+" required")
			}
			return next(c)
		}
	}
}
