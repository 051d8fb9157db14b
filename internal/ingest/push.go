package ingest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// secretHeader is the header Telegram echoes back when a webhook is
// registered with a secret token.
const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

// PushGateway accepts one update per webhook call. When a shared secret
// is configured, requests with a missing or wrong secret header are
// rejected before any pipeline work happens.
type PushGateway struct {
	d      dispatcher
	addr   string
	secret string
}

// NewPushGateway creates a webhook gateway.
func NewPushGateway(addr, secret string, d dispatcher) *PushGateway {
	return &PushGateway{addr: addr, secret: secret, d: d}
}

// Router builds the gin engine serving the webhook route.
func (g *PushGateway) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/webhook", g.handleWebhook)
	return r
}

// Run serves the webhook until the context is canceled.
func (g *PushGateway) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              g.addr,
		Handler:           g.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	g.d.logger.Info("webhook gateway listening", "addr", g.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleWebhook verifies the secret, decodes the update and responds
// immediately; the pipeline runs in its own goroutine.
func (g *PushGateway) handleWebhook(c *gin.Context) {
	if g.secret != "" && c.GetHeader(secretHeader) != g.secret {
		g.d.logger.Warn("webhook call with invalid secret", "remote", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}

	var upd tgbotapi.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
		return
	}

	go g.d.handle(context.WithoutCancel(c.Request.Context()), upd)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
