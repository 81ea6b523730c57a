package athlete

import (
	"context"
	"fmt"
	"strings"

	"github.com/meltforce/hybridcoach/internal/models"
)

// InjuryReport describes a new injury.
type InjuryReport struct {
	BodyPart   string `json:"body_part" validate:"required"`
	InjuryType string `json:"injury_type,omitempty"`
	Severity   string `json:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
	PainLevel  int    `json:"pain_level"`
	Notes      string `json:"notes,omitempty"`
}

func (s *Service) ReportInjury(ctx context.Context, userID int, in InjuryReport) (*models.Injury, error) {
	in.Severity = strings.ToLower(strings.TrimSpace(in.Severity))
	if err := s.check(in); err != nil {
		return nil, err
	}
	now := s.now()
	inj := models.Injury{
		UserID:     userID,
		BodyPart:   models.ParseBodyPart(in.BodyPart),
		InjuryType: strings.TrimSpace(in.InjuryType),
		Severity:   models.ParseSeverity(in.Severity),
		PainLevel:  models.ClampPain(in.PainLevel),
		Status:     models.InjuryActive,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	id, err := s.store.InsertInjury(ctx, inj)
	if err != nil {
		return nil, fmt.Errorf("reporting injury: %w", err)
	}
	inj.ID = id
	s.log.Info("injury reported", "user_id", userID, "body_part", inj.BodyPart, "severity", inj.Severity)
	return &inj, nil
}

// UpdateInjury changes pain, status or notes. Healing is a status change;
// injuries are never deleted.
func (s *Service) UpdateInjury(ctx context.Context, userID int, id int64, upd models.InjuryUpdate) (*models.Injury, error) {
	if upd.Status != nil {
		st := models.InjuryStatus(strings.ToLower(strings.TrimSpace(string(*upd.Status))))
		upd.Status = &st
	}
	if err := s.check(upd); err != nil {
		return nil, err
	}
	inj, err := s.store.GetInjury(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("loading injury: %w", err)
	}
	if inj == nil {
		return nil, ErrInjuryNotFound
	}

	if upd.PainLevel != nil {
		inj.PainLevel = models.ClampPain(*upd.PainLevel)
	}
	if upd.Status != nil {
		inj.Status = *upd.Status
	}
	if upd.Notes != nil {
		inj.Notes = *upd.Notes
	}
	inj.UpdatedAt = s.now()

	if err := s.store.UpdateInjury(ctx, *inj); err != nil {
		return nil, fmt.Errorf("updating injury: %w", err)
	}
	return inj, nil
}

func (s *Service) ActiveInjuries(ctx context.Context, userID int) ([]models.Injury, error) {
	return s.Injuries(ctx, userID, true)
}

// Injuries lists injuries newest first, optionally only those not healed.
func (s *Service) Injuries(ctx context.Context, userID int, activeOnly bool) ([]models.Injury, error) {
	injuries, err := s.store.ListInjuries(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing injuries: %w", err)
	}
	if injuries == nil {
		injuries = []models.Injury{}
	}
	return injuries, nil
}
