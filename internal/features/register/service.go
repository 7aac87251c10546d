package register

import (
	"context"
	"errors"
	"io"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/features/residents"
	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Store is the persistence surface the registration flow needs.
type Store interface {
	FindCodeByValue(ctx context.Context, code string) (*InvitationCode, error)
	ConsumeCode(ctx context.Context, codeID primitive.ObjectID) (int64, error)
	FindHouseByNumber(ctx context.Context, houseNumber string, residentialID primitive.ObjectID) (*residents.House, error)
	InsertResident(ctx context.Context, resident *residents.Resident) error
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

// Service implements invitation-code validation and resident registration.
type Service struct {
	store    Store
	uploader Uploader
	tx       Transactor
}

func NewService(store Store, uploader Uploader, tx Transactor) *Service {
	return &Service{store: store, uploader: uploader, tx: tx}
}

// ValidateCode checks that an invitation code exists and is still unused.
func (s *Service) ValidateCode(ctx context.Context, code string) (*ValidateCodeResult, error) {
	if code == "" {
		return nil, apperrors.Validation("MISSING_FIELD", "El código de invitación es requerido")
	}

	row, err := s.store.FindCodeByValue(ctx, code)
	if err != nil {
		return nil, apperrors.Persistence("Error al validar el código de invitación", err)
	}
	if row == nil {
		return nil, apperrors.NotFound("INVALID_CODE", "Código de invitación no válido")
	}
	if row.IsUsed {
		return nil, apperrors.Validation("CODE_ALREADY_USED", "Este código de invitación ya fue utilizado")
	}

	return &ValidateCodeResult{CodeID: row.ID, ResidentialID: row.ResidentialID}, nil
}

// Register uploads both photos, then inside one transaction resolves the
// house, creates the resident, and consumes the invitation code. A failed
// transaction rolls everything back and the uploaded blobs are destroyed
// best-effort.
func (s *Service) Register(ctx context.Context, input RegisterResidentInput, ineImage, residentPhoto io.Reader) (*residents.Resident, error) {
	if err := ValidateRegisterInput(&input); err != nil {
		return nil, err
	}

	inePhoto, err := s.uploader.UploadImage(ctx, ineImage, cloudinary.FolderResidents)
	if err != nil {
		return nil, err
	}
	photo, err := s.uploader.UploadImage(ctx, residentPhoto, cloudinary.FolderResidents)
	if err != nil {
		s.destroyBlob(ctx, inePhoto.PublicID)
		return nil, err
	}

	resident := &residents.Resident{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		PhotoURL:    photo.URL,
		InePhotoURL: inePhoto.URL,
		Status:      residents.StatusActive,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		house, err := s.store.FindHouseByNumber(txCtx, input.HouseNumber, input.ResidentialID)
		if err != nil {
			return apperrors.Persistence("Error al buscar la casa", err)
		}
		if house == nil {
			return apperrors.NotFound("HOUSE_NOT_FOUND", "El número de casa no fue encontrado en esta residencial")
		}
		resident.HouseID = house.ID

		if err := s.store.InsertResident(txCtx, resident); err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				return apperrors.Conflict("EMAIL_ALREADY_REGISTERED", "El correo electrónico ya está registrado")
			}
			return apperrors.Persistence("Error al registrar al residente", err)
		}

		consumed, err := s.store.ConsumeCode(txCtx, input.CodeID)
		if err != nil {
			return apperrors.Persistence("Error al consumir el código de invitación", err)
		}
		if consumed == 0 {
			return apperrors.Validation("CODE_ALREADY_USED", "Código de invitación no válido o ya utilizado")
		}
		return nil
	})
	if err != nil {
		s.destroyBlob(ctx, inePhoto.PublicID)
		s.destroyBlob(ctx, photo.PublicID)
		return nil, err
	}

	return resident, nil
}

func (s *Service) destroyBlob(ctx context.Context, publicID string) {
	if err := s.uploader.Destroy(ctx, publicID); err != nil {
		log.Printf("orphaned resident image %s left in image store: %v", publicID, err)
	}
}
