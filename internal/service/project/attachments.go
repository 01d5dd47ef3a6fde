package project

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// uploadBoth uploads images and videos as two parallel batches. A kind
// with no files yields nil. Either batch failing fails the call.
func (s *Service) uploadBoth(ctx context.Context, images, videos []domain.Attachment) ([]string, []string, error) {
	var imgRefs, vidRefs []string

	g, gctx := errgroup.WithContext(ctx)
	if len(images) > 0 {
		g.Go(func() error {
			refs, err := s.uploads.UploadAll(gctx, images, domain.MediaKindImage)
			imgRefs = refs
			return err
		})
	}
	if len(videos) > 0 {
		g.Go(func() error {
			refs, err := s.uploads.UploadAll(gctx, videos, domain.MediaKindVideo)
			vidRefs = refs
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return imgRefs, vidRefs, nil
}
