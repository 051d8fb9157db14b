// Package relay exposes the processing pipeline over HTTP so ingestion
// and processing can run as separate processes, and provides the client
// for the ingestion side of that split.
package relay

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/service"
)

// ProcessMessageRequest is the relay request body.
type ProcessMessageRequest struct {
	Message    string `json:"message" binding:"required"`
	TelegramID string `json:"telegram_id" binding:"required"`
}

// ProcessMessageResponse is the relay response body.
type ProcessMessageResponse struct {
	Message      string `json:"message"`
	Category     string `json:"category,omitempty"`
	Success      bool   `json:"success"`
	ExpenseAdded bool   `json:"expense_added"`
}

// AddUserRequest is the admin whitelist-add request body.
type AddUserRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
}

// Server serves the relay and admin API.
type Server struct {
	processor service.Processor
	store     service.Storage
	logger    *slog.Logger
}

// NewServer creates a relay server over the given processor and store.
func NewServer(processor service.Processor, store service.Storage, logger *slog.Logger) *Server {
	return &Server{processor: processor, store: store, logger: logger}
}

// Router builds the gin engine with all relay routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)
	r.POST("/process-message", s.processMessage)
	r.POST("/add-user", s.addUser)
	r.GET("/users/:telegram_id", s.getUser)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ledgerbot"})
}

func (s *Server) processMessage(c *gin.Context) {
	var req ProcessMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message and telegram_id are required"})
		return
	}

	result := s.processor.Process(c.Request.Context(), model.Message{
		Text:       req.Message,
		SenderID:   req.TelegramID,
		ReceivedAt: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, ProcessMessageResponse{
		Success:      result.Success,
		Message:      result.Message,
		ExpenseAdded: result.ExpenseAdded,
		Category:     string(result.Category),
	})
}

func (s *Server) addUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "telegram_id is required"})
		return
	}

	user, err := s.store.CreateUser(c.Request.Context(), req.TelegramID)
	if err != nil {
		s.logger.Error("failed to add user", "telegram_id", req.TelegramID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add user"})
		return
	}

	s.logger.Info("user added to whitelist", "telegram_id", user.TelegramID, "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "User added successfully",
		"user":    gin.H{"id": user.ID, "telegram_id": user.TelegramID},
	})
}

func (s *Server) getUser(c *gin.Context) {
	telegramID := c.Param("telegram_id")

	user, err := s.store.UserByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		s.logger.Error("failed to get user", "telegram_id", telegramID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": user.ID, "telegram_id": user.TelegramID, "created_at": user.CreatedAt},
	})
}
