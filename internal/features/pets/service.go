package pets

import (
	"context"
	"io"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Store is the persistence surface the pets service needs.
type Store interface {
	ResidentExists(ctx context.Context, residentID primitive.ObjectID) (bool, error)
	InsertPet(ctx context.Context, pet *Pet) error
	FindPet(ctx context.Context, petID primitive.ObjectID) (*Pet, error)
	ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]Pet, error)
	UpdatePet(ctx context.Context, petID primitive.ObjectID, input UpdatePetInput) (*Pet, error)
}

// Uploader is the image-store client surface.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder cloudinary.Folder) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// Service implements pet registration, listing, and updates.
type Service struct {
	store    Store
	uploader Uploader
}

func NewService(store Store, uploader Uploader) *Service {
	return &Service{store: store, uploader: uploader}
}

// Create registers a pet: the owner must exist, the photo is uploaded, then
// the pet row is stored. A failed insert destroys the uploaded blob
// best-effort.
func (s *Service) Create(ctx context.Context, input CreatePetInput, image io.Reader) (*Pet, error) {
	if err := ValidateCreatePetInput(&input); err != nil {
		return nil, err
	}

	exists, err := s.store.ResidentExists(ctx, input.ResidentID)
	if err != nil {
		return nil, apperrors.Persistence("Error al verificar el residente", err)
	}
	if !exists {
		return nil, apperrors.NotFound("RESIDENT_NOT_FOUND", "El residente no fue encontrado")
	}

	photo, err := s.uploader.UploadImage(ctx, image, cloudinary.FolderPets)
	if err != nil {
		return nil, err
	}

	pet := &Pet{
		ResidentID:  input.ResidentID,
		Name:        input.Name,
		Specie:      input.Specie,
		Breed:       input.Breed,
		Color:       input.Color,
		Description: input.Description,
		Status:      StatusHome,
		PhotoURL:    photo.URL,
	}

	if err := s.store.InsertPet(ctx, pet); err != nil {
		if derr := s.uploader.Destroy(ctx, photo.PublicID); derr != nil {
			log.Printf("orphaned pet image %s left in image store: %v", photo.PublicID, derr)
		}
		return nil, apperrors.Persistence("Error al registrar la mascota", err)
	}

	return pet, nil
}

// ListByResident returns a resident's pets, newest first.
func (s *Service) ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]Pet, error) {
	exists, err := s.store.ResidentExists(ctx, residentID)
	if err != nil {
		return nil, apperrors.Persistence("Error al verificar el residente", err)
	}
	if !exists {
		return nil, apperrors.NotFound("RESIDENT_NOT_FOUND", "Residente no encontrado")
	}

	pets, err := s.store.ListByResident(ctx, residentID)
	if err != nil {
		return nil, apperrors.Persistence("Error al obtener las mascotas", err)
	}
	return pets, nil
}

// Update overwrites a pet's editable fields. An empty status keeps the pet
// at home.
func (s *Service) Update(ctx context.Context, petID primitive.ObjectID, input UpdatePetInput) (*Pet, error) {
	if err := ValidateUpdatePetInput(&input); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = StatusHome
	}

	pet, err := s.store.UpdatePet(ctx, petID, input)
	if err != nil {
		return nil, apperrors.Persistence("Error al actualizar la mascota", err)
	}
	if pet == nil {
		return nil, apperrors.NotFound("PET_NOT_FOUND", "Mascota no encontrada")
	}
	return pet, nil
}
