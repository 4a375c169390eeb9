package middlewares

import (
	"context"
	"net/http"
	"strings"

	oidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"

	"github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/logger"
)

// Google Chat signs every webhook call with a JWT issued by this service
// account. Its signing keys are published as a JWK set.
const (
	chatIssuer = "chat@system.gserviceaccount.com"
	chatJWKSet = "https://www.googleapis.com/service_accounts/v1/jwk/chat@system.gserviceaccount.com"
)

// ChatAuth rejects webhook calls that do not carry a valid Google Chat
// bearer token. Disabled deployments pass everything through.
type ChatAuth interface {
	Middleware() gin.HandlerFunc
}

type ChatAuthImpl struct {
	cfg      config.Config
	logger   logger.Logger
	verifier *oidc.IDTokenVerifier
}

func NewChatAuthMiddleware(ctx context.Context, cfg config.Config, logger logger.Logger) (ChatAuth, error) {
	if !cfg.EnableChatAuth {
		return &ChatAuthImpl{cfg: cfg, logger: logger}, nil
	}

	keySet := oidc.NewRemoteKeySet(ctx, chatJWKSet)
	verifier := oidc.NewVerifier(chatIssuer, keySet, &oidc.Config{
		ClientID: cfg.Workspace.ChatAudience,
	})
	return &ChatAuthImpl{
		cfg:      cfg,
		logger:   logger,
		verifier: verifier,
	}, nil
}

func (m *ChatAuthImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verifier == nil {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			m.logger.Warn("webhook call without bearer token", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		if _, err := m.verifier.Verify(c.Request.Context(), raw); err != nil {
			m.logger.Warn("rejecting webhook call", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid bearer token"})
			return
		}
		c.Next()
	}
}
