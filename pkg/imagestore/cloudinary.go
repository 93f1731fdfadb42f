package imagestore

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNotConfigured is returned when CLOUDINARY_URL is not set.
var ErrNotConfigured = errors.New("image store not configured")

const localizeTimeout = 5 * time.Second

// Store wraps the Cloudinary uploader.
type Store struct {
	cld *cloudinary.Cloudinary
}

// New builds a Store from the CLOUDINARY_URL environment variable. A nil
// Store is usable: every call soft-fails.
func New() (*Store, error) {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &Store{cld: cld}, nil
}

// Upload stores a file and returns its public URL.
func (s *Store) Upload(ctx context.Context, file io.Reader) (string, error) {
	if s == nil || s.cld == nil {
		return "", ErrNotConfigured
	}
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// Localize re-hosts an external image URL and returns the local URL. Best
// effort: on any failure (including not configured) the original URL is
// returned so the caller's write can proceed.
func (s *Store) Localize(ctx context.Context, externalURL string) string {
	if s == nil || s.cld == nil || externalURL == "" {
		return externalURL
	}
	ctx, cancel := context.WithTimeout(ctx, localizeTimeout)
	defer cancel()

	// Cloudinary fetches remote URLs passed as the file argument.
	res, err := s.cld.Upload.Upload(ctx, externalURL, uploader.UploadParams{})
	if err != nil || res.SecureURL == "" {
		return externalURL
	}
	return res.SecureURL
}
