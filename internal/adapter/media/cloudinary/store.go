// Package cloudinary stores project attachments in Cloudinary.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// uploadAPI is the subset of the Cloudinary upload API the store uses.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// pingAPI is the subset of the Cloudinary admin API used for health checks.
type pingAPI interface {
	Ping(ctx context.Context) (*admin.PingResult, error)
}

// Store uploads attachments into one Cloudinary folder; the media kind
// selects the resource type.
type Store struct {
	api    uploadAPI
	admin  pingAPI
	folder string
	log    *slog.Logger
}

// New creates a Store from account credentials.
func New(log *slog.Logger, cloudName, apiKey, apiSecret, folder string) (*Store, error) {
	c, err := cld.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return newStore(log, &c.Upload, &c.Admin, folder), nil
}

func newStore(log *slog.Logger, api uploadAPI, adm pingAPI, folder string) *Store {
	return &Store{
		api:    api,
		admin:  adm,
		folder: folder,
		log:    log.With("store", "cloudinary"),
	}
}

// Put uploads one attachment and returns its HTTPS URL.
func (s *Store) Put(ctx context.Context, kind domain.MediaKind, a domain.Attachment) (string, error) {
	if len(a.Data) == 0 {
		return "", errors.New("empty attachment")
	}

	res, err := s.api.Upload(ctx, bytes.NewReader(a.Data), uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: kind.String(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res == nil {
		return "", errors.New("cloudinary upload: empty response")
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: response has no secure_url")
	}

	s.log.DebugContext(ctx, "attachment uploaded",
		slog.String("kind", kind.String()),
		slog.String("public_id", res.PublicID),
		slog.Int("bytes", len(a.Data)),
	)
	return res.SecureURL, nil
}

// Ping checks that the account credentials are accepted.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("cloudinary ping: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary ping: %s", res.Error.Message)
	}
	return nil
}
