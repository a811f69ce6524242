package interviewapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voxterview-server-go/internal/domain/interview"
	"voxterview-server-go/internal/platform/errors"
	"voxterview-server-go/internal/platform/logging"
	httptransport "voxterview-server-go/internal/transport/http"
)

// Service is the HTTP transport layer for interview control.
type Service struct {
	manager *interview.Manager
	logger  *logging.Logger
}

// NewService creates a new interview API service.
func NewService(manager *interview.Manager, logger *logging.Logger) (*Service, error) {
	if manager == nil {
		return nil, errors.New(errors.KindConfig, "interviewapi.new", "manager is required")
	}
	if logger == nil {
		return nil, errors.New(errors.KindConfig, "interviewapi.new", "logger is required")
	}

	return &Service{
		manager: manager,
		logger:  logger,
	}, nil
}

// Register mounts the interview control routes on the API group.
func (s *Service) Register(ctx context.Context, router *gin.RouterGroup) error {
	group := router.Group("/interview")
	group.POST("/start", s.handleStart)
	group.POST("/skip", s.handleSkip)
	group.POST("/stop", s.handleStop)
	group.GET("/status", s.handleStatus)

	s.logger.InfoTag("HTTP", "interview routes registered")
	return nil
}

func (s *Service) handleStart(c *gin.Context) {
	status := s.manager.Start()
	httptransport.RespondSuccess(c, http.StatusOK, status, "interview started")
}

func (s *Service) handleSkip(c *gin.Context) {
	msg, err := s.manager.Skip()
	if err != nil {
		httptransport.RespondError(c, http.StatusConflict, err.Error(), nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, msg)
}

func (s *Service) handleStop(c *gin.Context) {
	msg, err := s.manager.Stop()
	if err != nil {
		httptransport.RespondError(c, http.StatusConflict, err.Error(), nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, msg)
}

func (s *Service) handleStatus(c *gin.Context) {
	status, active := s.manager.Status()
	httptransport.RespondSuccess(c, http.StatusOK, gin.H{
		"active": active,
		"status": status,
	}, "")
}
