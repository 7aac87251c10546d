package votes

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/features/reports"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Store is the persistence surface of the vote ledger.
type Store interface {
	FindReport(ctx context.Context, reportID primitive.ObjectID) (*reports.Report, error)
	ResidentExists(ctx context.Context, residentID primitive.ObjectID) (bool, error)
	FindVote(ctx context.Context, reportID, residentID primitive.ObjectID) (*Vote, error)
	InsertVote(ctx context.Context, vote *Vote) error
	UpdateVoteValue(ctx context.Context, reportID, residentID primitive.ObjectID, value int) error
	DeleteVote(ctx context.Context, reportID, residentID primitive.ObjectID) (int64, error)
}

// Transactor runs a unit of work inside a storage transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies the three-state toggle policy per (report, voter) pair.
type Service struct {
	store Store
	tx    Transactor
}

func NewService(store Store, tx Transactor) *Service {
	return &Service{store: store, tx: tx}
}

// Cast resolves one logical vote request. No prior vote creates a row, a
// repeat of the same value removes it, the opposite value updates it in
// place. The check-then-act read is advisory only: when a concurrent insert
// wins the race, the unique index fires and the cast is re-resolved against
// the row that won.
func (s *Service) Cast(ctx context.Context, reportID, voterID primitive.ObjectID, value int) (*CastVoteResult, error) {
	if value != Upvote && value != Downvote {
		return nil, apperrors.Validation("INVALID_VOTE_VALUE",
			"El valor del voto debe ser 1 (upvote) o -1 (downvote)")
	}

	report, err := s.store.FindReport(ctx, reportID)
	if err != nil {
		return nil, apperrors.Persistence("Error al obtener el reporte", err)
	}
	if report == nil {
		return nil, apperrors.NotFound("REPORT_NOT_FOUND", "Reporte no encontrado")
	}
	if !report.Public {
		return nil, apperrors.PermissionDenied("REPORT_NOT_PUBLIC",
			"No puedes votar en reportes privados")
	}

	exists, err := s.store.ResidentExists(ctx, voterID)
	if err != nil {
		return nil, apperrors.Persistence("Error al verificar el residente", err)
	}
	if !exists {
		return nil, apperrors.NotFound("RESIDENT_NOT_FOUND", "Residente no encontrado")
	}

	var result *CastVoteResult
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		result, err = s.resolve(txCtx, reportID, voterID, value)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) resolve(ctx context.Context, reportID, voterID primitive.ObjectID, value int) (*CastVoteResult, error) {
	existing, err := s.store.FindVote(ctx, reportID, voterID)
	if err != nil {
		return nil, apperrors.Persistence("Error al consultar el voto", err)
	}

	if existing == nil {
		err := s.store.InsertVote(ctx, &Vote{ReportID: reportID, ResidentID: voterID, Value: value})
		if err == nil {
			v := value
			return &CastVoteResult{Action: ActionCreated, Value: &v}, nil
		}
		if !errors.Is(err, ErrDuplicateVote) {
			return nil, apperrors.Persistence("Error al registrar el voto", err)
		}
		// Lost the race: a concurrent cast created the row first. Re-read
		// and fall through to the update/delete resolution.
		existing, err = s.store.FindVote(ctx, reportID, voterID)
		if err != nil {
			return nil, apperrors.Persistence("Error al consultar el voto", err)
		}
		if existing == nil {
			return nil, apperrors.Persistence("Error al registrar el voto", ErrDuplicateVote)
		}
	}

	if existing.Value == value {
		if _, err := s.store.DeleteVote(ctx, reportID, voterID); err != nil {
			return nil, apperrors.Persistence("Error al eliminar el voto", err)
		}
		return &CastVoteResult{Action: ActionRemoved, Value: nil}, nil
	}

	if err := s.store.UpdateVoteValue(ctx, reportID, voterID, value); err != nil {
		return nil, apperrors.Persistence("Error al actualizar el voto", err)
	}
	v := value
	return &CastVoteResult{Action: ActionUpdated, Value: &v}, nil
}

// Remove explicitly deletes a voter's vote on a report.
func (s *Service) Remove(ctx context.Context, reportID, voterID primitive.ObjectID) error {
	count, err := s.store.DeleteVote(ctx, reportID, voterID)
	if err != nil {
		return apperrors.Persistence("Error al eliminar el voto", err)
	}
	if count == 0 {
		return apperrors.NotFound("VOTE_NOT_FOUND", "No se encontró el voto")
	}
	return nil
}
