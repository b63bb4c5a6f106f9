package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/alimikegami/e-bazaar/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// PublicPath exempts requests from the token check. A Pattern ending in "*"
// matches every path with that prefix; no Methods means any method.
type PublicPath struct {
	Pattern string
	Methods []string
}

func (p PublicPath) Matches(method, path string) bool {
	if len(p.Methods) > 0 {
		allowed := false
		for _, m := range p.Methods {
			if strings.EqualFold(m, method) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	if prefix, ok := strings.CutSuffix(p.Pattern, "*"); ok {
		return strings.HasPrefix(path, prefix)
	}

	return path == p.Pattern
}

func DefaultPublicPaths(apiURL string) []PublicPath {
	readOnly := []string{http.MethodGet, http.MethodOptions}

	return []PublicPath{
		{Pattern: "/public/uploads*"},
		{Pattern: apiURL + "/products*", Methods: readOnly},
		{Pattern: apiURL + "/categories*", Methods: readOnly},
		{Pattern: apiURL + "/sellers*", Methods: readOnly},
		{Pattern: apiURL + "/users/login"},
		{Pattern: apiURL + "/users/register"},
		{Pattern: apiURL + "/ping"},
	}
}

func PublicPathSkipper(paths []PublicPath) echomiddleware.Skipper {
	return func(c echo.Context) bool {
		req := c.Request()
		for _, p := range paths {
			if p.Matches(req.Method, req.URL.Path) {
				return true
			}
		}

		return false
	}
}

type Subject struct {
	UserID  string
	IsAdmin bool
}

type subjectKey struct{}

func SubjectFromContext(ctx context.Context) (Subject, bool) {
	subject, ok := ctx.Value(subjectKey{}).(Subject)
	return subject, ok
}

// Auth rejects requests to non-public paths that lack a valid bearer token
// and attaches the token subject to the request context of the rest.
func Auth(jwtSecret string, paths []PublicPath) echo.MiddlewareFunc {
	skipper := PublicPathSkipper(paths)

	verifyToken := echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		Skipper:    skipper,
		SigningKey: []byte(jwtSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			log.Ctx(c.Request().Context()).Warn().Err(err).Str("component", "Auth").Msg("")
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verifyToken(attachSubject(skipper, next))
	}
}

func attachSubject(skipper echomiddleware.Skipper, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if skipper(c) {
			return next(c)
		}

		token, _ := c.Get("user").(*jwt.Token)
		userID, isAdmin, ok := utils.ExtractTokenUser(token)
		if !ok {
			log.Ctx(c.Request().Context()).Warn().Str("component", "Auth").Msg("token without subject")
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		}

		ctx := context.WithValue(c.Request().Context(), subjectKey{}, Subject{UserID: userID, IsAdmin: isAdmin})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
