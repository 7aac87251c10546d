package residents

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Store is the persistence surface the resident lookups need.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Resident, error)
	FindHouse(ctx context.Context, houseID primitive.ObjectID) (*House, error)
}

// Service implements the resident lookup logic.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetByEmail returns the resident with that email together with the
// residential their house belongs to.
func (s *Service) GetByEmail(ctx context.Context, email string) (*ResidentProfile, error) {
	resident, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Persistence("Error al buscar al residente", err)
	}
	if resident == nil {
		return nil, apperrors.NotFound("RESIDENT_NOT_FOUND", "Residente no encontrado")
	}

	house, err := s.store.FindHouse(ctx, resident.HouseID)
	if err != nil {
		return nil, apperrors.Persistence("Error al buscar la casa del residente", err)
	}
	if house == nil {
		return nil, apperrors.NotFound("HOUSE_NOT_FOUND", "La casa del residente no fue encontrada")
	}

	return &ResidentProfile{Resident: *resident, ResidentialID: house.ResidentialID}, nil
}
