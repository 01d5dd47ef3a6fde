// Package local stores project attachments on the filesystem under
// content-addressed names and serves them from a public base URL.
package local

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// Store writes attachments to baseDir/<folder>/<kind>/<hh>/<sha256><ext>.
// Identical content maps to the same file.
type Store struct {
	baseDir string
	folder  string
	baseURL string
	log     *slog.Logger
}

// New creates a Store, creating baseDir if needed.
func New(log *slog.Logger, baseDir, folder, publicBaseURL string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{
		baseDir: baseDir,
		folder:  folder,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     log.With("store", "local"),
	}, nil
}

// Put writes one attachment and returns its public URL.
func (s *Store) Put(ctx context.Context, kind domain.MediaKind, a domain.Attachment) (string, error) {
	if len(a.Data) == 0 {
		return "", errors.New("empty attachment")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := sha256.Sum256(a.Data)
	hash := hex.EncodeToString(sum[:])
	rel := path.Join(s.folder, kind.String(), hash[:2], hash+mimetype.Detect(a.Data).Extension())

	dst := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if _, err := os.Stat(dst); err == nil {
		return s.url(rel), nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media subdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move into place: %w", err)
	}

	s.log.DebugContext(ctx, "attachment stored",
		slog.String("kind", kind.String()),
		slog.String("path", rel),
		slog.Int("bytes", len(a.Data)),
	)
	return s.url(rel), nil
}

func (s *Store) url(rel string) string {
	return s.baseURL + "/" + rel
}

// Handler serves stored files. Mount it under the path of the public base URL.
func (s *Store) Handler() http.Handler {
	return http.FileServer(noListing{http.Dir(s.baseDir)})
}

// noListing hides directory indexes.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// Ping checks that the media directory still exists.
func (s *Store) Ping(ctx context.Context) error {
	fi, err := os.Stat(s.baseDir)
	if err != nil {
		return fmt.Errorf("media dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("media dir %s is not a directory", s.baseDir)
	}
	return nil
}
