// internal/app/features/profile/handler.go
package profile

import (
	uierrors "github.com/dalemusser/freelancehub/internal/app/features/errors"
	"github.com/dalemusser/freelancehub/internal/app/system/tracing"
	"github.com/dalemusser/freelancehub/internal/domain/models"
	"go.uber.org/zap"
)

// MemberGetter looks up one member by exact id.
type MemberGetter interface {
	GetByID(id string) (models.Member, error)
}

// Handler owns the member profile page.
type Handler struct {
	Members  MemberGetter
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Counters *tracing.Counters
}

// NewHandler constructs a profile Handler. counters may be nil.
func NewHandler(members MemberGetter, counters *tracing.Counters, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Members:  members,
		Log:      logger,
		ErrLog:   errLog,
		Counters: counters,
	}
}
