package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AdminRole) == "" {
		return fmt.Errorf("auth.admin_role must not be empty")
	}

	if err := c.Media.validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}

	if err := c.Sequence.validate(); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}

	return nil
}

func (m *MediaConfig) validate() error {
	switch m.Provider {
	case MediaProviderCloudinary:
		if m.CloudinaryCloud == "" || m.CloudinaryKey == "" || m.CloudinarySecret == "" {
			return fmt.Errorf("cloudinary provider requires cloud name, api key and api secret")
		}
	case MediaProviderLocal:
		if strings.TrimSpace(m.LocalDir) == "" {
			return fmt.Errorf("local provider requires local_dir")
		}
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", m.Provider, MediaProviderCloudinary, MediaProviderLocal)
	}

	if m.UploadConcurrency <= 0 {
		return fmt.Errorf("upload_concurrency must be > 0 (got %d)", m.UploadConcurrency)
	}
	if m.MaxInflightUploads < m.UploadConcurrency {
		return fmt.Errorf("max_inflight_uploads must be >= upload_concurrency (got %d < %d)", m.MaxInflightUploads, m.UploadConcurrency)
	}
	if m.UploadTimeout <= 0 {
		return fmt.Errorf("upload_timeout must be > 0 (got %v)", m.UploadTimeout)
	}
	if m.MaxFilesPerKind <= 0 {
		return fmt.Errorf("max_files_per_kind must be > 0 (got %d)", m.MaxFilesPerKind)
	}
	return nil
}

func (s *SequenceConfig) validate() error {
	if !s.Mode().IsValid() {
		return fmt.Errorf("consistency must be relaxed or serialized (got %q)", s.Consistency)
	}
	return nil
}
