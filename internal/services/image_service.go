package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted product image, 5 MB.
const MaxImageSize = 5 * 1024 * 1024

var (
	// ErrNotAnImage is returned for uploads whose content is not an image.
	ErrNotAnImage = errors.New("upload is not an image")
	// ErrImageTooLarge is returned for uploads above MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds 5MB")
)

// ImageService stores uploaded product images on local disk.
type ImageService struct {
	dir       string
	publicURL string
}

// NewImageService creates an ImageService writing into dir and serving files
// under publicURL + "/uploads/".
func NewImageService(dir, publicURL string) *ImageService {
	return &ImageService{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}
}

// Dir is the directory images are written to.
func (s *ImageService) Dir() string {
	return s.dir
}

// Store sniffs r, writes it under a fresh name and returns its public URL.
// The declared content type of the upload is ignored.
func (s *ImageService) Store(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrNotAnImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	name := uuid.New().String() + mt.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return s.publicURL + "/uploads/" + name, nil
}
