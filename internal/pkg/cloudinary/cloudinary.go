package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Folder is a logical destination inside the Cloudinary account. Report, pet,
// and resident imagery never share a folder.
type Folder string

const (
	FolderReports   Folder = "reports"
	FolderPets      Folder = "pets"
	FolderResidents Folder = "residents"
)

// Service handles Cloudinary upload operations
type Service struct {
	cld        *cloudinary.Cloudinary
	rootFolder string
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	FileSize int64
}

// File validation constants
var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	MaxImageSize = int64(10 * 1024 * 1024) // 10MB
)

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, rootFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if rootFolder == "" {
		rootFolder = "ressly"
	}

	return &Service{
		cld:        cld,
		rootFolder: rootFolder,
	}, nil
}

// UploadImage uploads an image blob into the given folder and returns the
// durable URL. Once this succeeds the stored object exists regardless of what
// the caller does afterwards; rollback of a surrounding transaction does not
// remove it.
func (s *Service) UploadImage(ctx context.Context, file io.Reader, folder Folder) (*UploadResult, error) {
	uploadParams := uploader.UploadParams{
		Folder:       s.rootFolder + "/" + string(folder),
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, apperrors.Upload("Error al subir la imagen a Cloudinary", err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Format:   result.Format,
		FileSize: int64(result.Bytes),
	}, nil
}

// Destroy removes an asset from Cloudinary. Used for best-effort cleanup of
// blobs left behind by a rolled-back transaction.
func (s *Service) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// ValidateImageFile validates an image file upload
func ValidateImageFile(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isAllowedExtension(ext, AllowedImageTypes) {
		return fmt.Errorf("invalid image file type: %s. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))
	}

	return nil
}

func isAllowedExtension(ext string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}
