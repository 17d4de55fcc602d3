// internal/app/features/directory/handler.go
package directory

import (
	"github.com/dalemusser/freelancehub/internal/domain/models"
	"go.uber.org/zap"
)

// MemberLister yields the full ordered member collection.
type MemberLister interface {
	All() []models.Member
}

// Handler serves the member directory.
type Handler struct {
	Members      MemberLister
	Log          *zap.Logger
	PreviewLimit int // featured card bio length in runes
}

// NewHandler constructs a directory Handler.
func NewHandler(members MemberLister, previewLimit int, logger *zap.Logger) *Handler {
	return &Handler{
		Members:      members,
		Log:          logger,
		PreviewLimit: previewLimit,
	}
}
