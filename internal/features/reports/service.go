package reports

import (
	"bytes"
	"context"
	"io"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Store is the persistence surface the service needs. The Mongo repository
// implements it; tests supply a fake that honors transaction discard.
type Store interface {
	ResidentExists(ctx context.Context, residentID primitive.ObjectID) (bool, error)
	InsertReport(ctx context.Context, report *Report) error
	InsertImage(ctx context.Context, image *ReportImage) error
	FindReport(ctx context.Context, reportID primitive.ObjectID) (*Report, error)
	ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]Report, error)
	ListImages(ctx context.Context, reportID primitive.ObjectID) ([]ReportImage, error)
	DeleteReport(ctx context.Context, reportID primitive.ObjectID) (int64, error)
	DeleteImagesByReport(ctx context.Context, reportID primitive.ObjectID) error
	DeleteVotesByReport(ctx context.Context, reportID primitive.ObjectID) error
}

// Uploader is the image-store client surface.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder cloudinary.Folder) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// Transactor runs a unit of work inside a storage transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates report creation, listing, and cascading deletion.
type Service struct {
	store    Store
	uploader Uploader
	tx       Transactor
}

func NewService(store Store, uploader Uploader, tx Transactor) *Service {
	return &Service{store: store, uploader: uploader, tx: tx}
}

// Create validates the input, then inside one transaction inserts the report
// row and, per image in submission order, uploads the blob and links an image
// row. Any failure rolls the database work back; no report or image row
// survives. Blobs already uploaded before the failure cannot be rolled back
// by the store, so they are destroyed best-effort afterwards.
func (s *Service) Create(ctx context.Context, input CreateReportInput, images []io.Reader) (*ReportWithImages, error) {
	if err := ValidateCreateReportInput(&input, len(images)); err != nil {
		return nil, err
	}

	report := &Report{
		ResidentID:  input.ResidentID,
		Title:       input.Title,
		Category:    input.Category,
		Urgency:     input.Urgency,
		Location:    input.Location,
		Description: input.Description,
		Anonymous:   input.Anonymous,
		Public:      input.Public,
		Status:      StatusPending,
	}

	// Multipart readers are one-shot, but the transaction callback below can
	// be retried on a transient abort. Buffer every image up front so each
	// attempt uploads the full bytes instead of a drained reader.
	blobs := make([][]byte, 0, len(images))
	for _, image := range images {
		data, err := io.ReadAll(image)
		if err != nil {
			return nil, apperrors.Validation("INVALID_FILE", "No se pudo leer la imagen del reporte")
		}
		blobs = append(blobs, data)
	}

	var uploaded []*cloudinary.UploadResult
	var urls []string

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		// A retried attempt starts over: blobs stored by the aborted attempt
		// would otherwise leak in the image store.
		s.destroyBlobs(ctx, uploaded)
		uploaded = uploaded[:0]

		// Re-check inside the scope: the existence check races with deletes.
		exists, err := s.store.ResidentExists(txCtx, input.ResidentID)
		if err != nil {
			return apperrors.Persistence("Error al verificar el residente", err)
		}
		if !exists {
			return apperrors.NotFound("RESIDENT_NOT_FOUND", "El residente no fue encontrado")
		}

		if err := s.store.InsertReport(txCtx, report); err != nil {
			return apperrors.Persistence("Error al guardar el reporte", err)
		}

		urls = urls[:0]
		for i, blob := range blobs {
			result, err := s.uploader.UploadImage(txCtx, bytes.NewReader(blob), cloudinary.FolderReports)
			if err != nil {
				return err
			}
			uploaded = append(uploaded, result)

			row := &ReportImage{
				ReportID: report.ID,
				URL:      result.URL,
				PublicID: result.PublicID,
				Position: i,
			}
			if err := s.store.InsertImage(txCtx, row); err != nil {
				return apperrors.Persistence("Error al guardar la imagen del reporte", err)
			}
			urls = append(urls, result.URL)
		}

		return nil
	})
	if err != nil {
		// The store rolled back, but uploads are not transactional: blobs
		// stored before the failure still exist. Destroy them best-effort.
		s.destroyBlobs(ctx, uploaded)
		return nil, err
	}

	return &ReportWithImages{Report: *report, Images: urls}, nil
}

// destroyBlobs removes stored assets best-effort; failures are logged, never
// surfaced.
func (s *Service) destroyBlobs(ctx context.Context, results []*cloudinary.UploadResult) {
	for _, result := range results {
		if err := s.uploader.Destroy(ctx, result.PublicID); err != nil {
			log.Printf("orphaned report image %s left in image store: %v", result.PublicID, err)
		}
	}
}

// ListByResident returns a resident's reports with images, newest first.
func (s *Service) ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]ReportWithImages, error) {
	exists, err := s.store.ResidentExists(ctx, residentID)
	if err != nil {
		return nil, apperrors.Persistence("Error al verificar el residente", err)
	}
	if !exists {
		return nil, apperrors.NotFound("RESIDENT_NOT_FOUND", "Residente no encontrado")
	}

	list, err := s.store.ListByResident(ctx, residentID)
	if err != nil {
		return nil, apperrors.Persistence("Error al obtener los reportes", err)
	}

	results := make([]ReportWithImages, 0, len(list))
	for _, report := range list {
		images, err := s.store.ListImages(ctx, report.ID)
		if err != nil {
			return nil, apperrors.Persistence("Error al obtener las imágenes del reporte", err)
		}
		urls := make([]string, 0, len(images))
		for _, image := range images {
			urls = append(urls, image.URL)
		}
		results = append(results, ReportWithImages{Report: report, Images: urls})
	}

	return results, nil
}

// Delete removes a report and cascades to its images and votes inside one
// transaction. Stored blobs are destroyed best-effort after the commit.
func (s *Service) Delete(ctx context.Context, reportID primitive.ObjectID) error {
	var images []ReportImage

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		report, err := s.store.FindReport(txCtx, reportID)
		if err != nil {
			return apperrors.Persistence("Error al obtener el reporte", err)
		}
		if report == nil {
			return apperrors.NotFound("REPORT_NOT_FOUND", "Reporte no encontrado")
		}

		images, err = s.store.ListImages(txCtx, reportID)
		if err != nil {
			return apperrors.Persistence("Error al obtener las imágenes del reporte", err)
		}

		if err := s.store.DeleteVotesByReport(txCtx, reportID); err != nil {
			return apperrors.Persistence("Error al eliminar los votos del reporte", err)
		}
		if err := s.store.DeleteImagesByReport(txCtx, reportID); err != nil {
			return apperrors.Persistence("Error al eliminar las imágenes del reporte", err)
		}
		if _, err := s.store.DeleteReport(txCtx, reportID); err != nil {
			return apperrors.Persistence("Error al eliminar el reporte", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, image := range images {
		if derr := s.uploader.Destroy(ctx, image.PublicID); derr != nil {
			log.Printf("orphaned report image %s left in image store: %v", image.PublicID, derr)
		}
	}
	return nil
}
