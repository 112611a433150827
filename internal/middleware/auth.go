package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/response"
)

const scopeKey = "scope"

type scopeCtxKey struct{}

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, ok bool)
}

// StaticTokenVerifier checks tokens against a fixed token -> user id table.
type StaticTokenVerifier struct {
	tokens map[string]string
}

// NewStaticTokenVerifier copies tokens into a new verifier.
func NewStaticTokenVerifier(tokens map[string]string) *StaticTokenVerifier {
	cp := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cp[k] = v
	}
	return &StaticTokenVerifier{tokens: cp}
}

// Verify compares token with every known token in constant time.
func (v *StaticTokenVerifier) Verify(_ context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	var userID string
	found := false
	for known, uid := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 {
			userID = uid
			found = true
		}
	}
	return userID, found
}

// Auth rejects requests without a valid bearer token and stores the caller's scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			return
		}

		userID, ok := m.verifier.Verify(ctx, token)
		if !ok {
			m.l.Warnf(ctx, "middleware.Auth: invalid token from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{UserID: userID}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(context.WithValue(ctx, scopeCtxKey{}, sc))
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// ScopeFromContext returns the scope stored by Auth on the request context.
func ScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
