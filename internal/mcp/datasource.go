package mcp

import (
	"context"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/safety"
)

// DataSource abstracts the coaching engine for MCP tools. Both
// *athlete.Service (local) and HTTPClient (remote via REST API) satisfy
// this interface.
type DataSource interface {
	Readiness(ctx context.Context, userID int) (*athlete.ReadinessReport, error)
	Fatigue(ctx context.Context, userID int) (*models.AthleteState, error)
	GeneratePlan(ctx context.Context, userID int, req athlete.PlanRequest) (*composer.SessionPlan, error)
	CheckIn(ctx context.Context, userID int, in athlete.CheckIn) (*safety.Evaluation, error)
	LogSession(ctx context.Context, userID int, in athlete.SessionLog) (*models.AthleteState, error)
	RecentSessions(ctx context.Context, userID, limit int) ([]models.TrainingSession, error)
	ReportInjury(ctx context.Context, userID int, in athlete.InjuryReport) (*models.Injury, error)
	UpdateInjury(ctx context.Context, userID int, id int64, upd models.InjuryUpdate) (*models.Injury, error)
	Injuries(ctx context.Context, userID int, activeOnly bool) ([]models.Injury, error)
	Exercises(ctx context.Context, userID int, q athlete.ExerciseQuery) ([]catalog.ExerciseSpec, error)
	Substitute(ctx context.Context, name string) (string, error)
}

// Compile-time check: *athlete.Service satisfies DataSource.
var _ DataSource = (*athlete.Service)(nil)
