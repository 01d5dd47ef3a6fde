package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/portfolio-backend/internal/adapter/media/cloudinary"
	"github.com/heartmarshall/portfolio-backend/internal/adapter/media/local"
	"github.com/heartmarshall/portfolio-backend/internal/config"
	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

type mediaStore interface {
	Put(ctx context.Context, kind domain.MediaKind, a domain.Attachment) (string, error)
	Ping(ctx context.Context) error
}

// newMediaStore builds the configured store. The handler is non-nil only
// for the local provider, which serves its own files.
func newMediaStore(logger *slog.Logger, cfg config.MediaConfig) (mediaStore, http.Handler, error) {
	switch cfg.Provider {
	case config.MediaProviderCloudinary:
		s, err := cloudinary.New(logger, cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret, cfg.Folder)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case config.MediaProviderLocal:
		s, err := local.New(logger, cfg.LocalDir, cfg.Folder, cfg.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Handler(), nil
	default:
		return nil, nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
	}
}
