package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	gotrue "github.com/supabase-community/gotrue-go"

	"github.com/SangWon7242/next-board/internal/board"
	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/internal/views"
)

var validate = validator.New()

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Board   *board.Service
	Records gateway.RecordStore
	Auth    gotrue.Client
	Views   *views.Cache
	Logger  *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(boardSvc *board.Service, records gateway.RecordStore, auth gotrue.Client, viewCache *views.Cache, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Board:   boardSvc,
		Records: records,
		Auth:    auth,
		Views:   viewCache,
		Logger:  logger,
	}
}
