package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/models"
)

// splitList parses a comma-separated argument.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func foci() []string {
	var out []string
	for _, f := range catalog.Foci() {
		out = append(out, string(f))
	}
	return out
}

// --- Tool definitions ---

var toolGetReadiness = mcp.NewTool("get_readiness",
	mcp.WithDescription("Readiness score (0-100) with status, a line-by-line breakdown of every penalty and bonus, active injuries, blocked movement tags and the quick fatigue gauge."),
)

var toolGetFatigue = mcp.NewTool("get_fatigue",
	mcp.WithDescription("Current fatigue per system (CNS, upper body, lower body, cardio) on a 0-100 scale, recovered up to now, plus mesocycle phase."),
)

var toolGenerateSession = mcp.NewTool("generate_session",
	mcp.WithDescription("Generate a training session from the athlete's current fatigue and injuries. CNS fatigue above 80 always yields an active recovery session."),
	mcp.WithString("discipline", mcp.Description("Session discipline. Unknown values give a full body strength session."),
		mcp.Enum(string(composer.Strength), string(composer.Boxing), string(composer.Cardio), string(composer.Athletics))),
	mcp.WithString("difficulty", mcp.Description("Training tier. Defaults to Intermediate."),
		mcp.Enum(string(catalog.Beginner), string(catalog.Intermediate), string(catalog.Advanced))),
	mcp.WithNumber("minutes", mcp.Description("Session length in minutes. Defaults to 60."), mcp.Min(0), mcp.Max(600)),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment tags (e.g. 'barbell,dumbbells'). Bodyweight is always available.")),
)

var toolEvaluateCheckIn = mcp.NewTool("evaluate_checkin",
	mcp.WithDescription("Run the morning safety check-in: returns a go/no-go recommendation, a warning when a hard stop rule fired, and the deciding rule. Also records sleep in today's log."),
	mcp.WithNumber("fatigue_level", mcp.Required(), mcp.Description("Self-reported fatigue 0-10"), mcp.Min(0), mcp.Max(10)),
	mcp.WithNumber("sleep_hours", mcp.Required(), mcp.Description("Hours slept last night"), mcp.Min(0), mcp.Max(24)),
	mcp.WithNumber("motivation", mcp.Required(), mcp.Description("Self-reported motivation 0-10"), mcp.Min(0), mcp.Max(10)),
	mcp.WithString("soreness", mcp.Description("Comma-separated sore areas (e.g. 'legs,shoulders')")),
)

var toolLogSession = mcp.NewTool("log_session",
	mcp.WithDescription("Log a completed session. Fatigue is recovered to now and the session's cost is added. Returns the updated state."),
	mcp.WithString("discipline", mcp.Required(), mcp.Description("Boxing, Strength, Cardio or Athletics")),
	mcp.WithNumber("rpe", mcp.Required(), mcp.Description("Rate of perceived exertion 1-10"), mcp.Min(1), mcp.Max(10)),
	mcp.WithNumber("duration_minutes", mcp.Required(), mcp.Description("Session length in minutes"), mcp.Min(1)),
	mcp.WithString("impact_type", mcp.Description("Override the derived impact row"), mcp.Enum(fatigue.SessionTypes()...)),
	mcp.WithString("notes", mcp.Description("Free text. Strength notes mentioning legs count as a leg day.")),
)

var toolRecentSessions = mcp.NewTool("recent_sessions",
	mcp.WithDescription("Most recently logged sessions, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum sessions to return. Defaults to 20."), mcp.Min(1), mcp.Max(200)),
)

var toolReportInjury = mcp.NewTool("report_injury",
	mcp.WithDescription("Report a new injury. Active injuries lower readiness and block related movements in generated sessions."),
	mcp.WithString("body_part", mcp.Required(), mcp.Description("Injured body part"),
		mcp.Enum("shoulder", "knee", "lower_back", "ankle", "wrist", "elbow", "hip", "general")),
	mcp.WithNumber("pain_level", mcp.Required(), mcp.Description("Pain 1-10"), mcp.Min(1), mcp.Max(10)),
	mcp.WithString("severity", mcp.Description("Defaults to mild"), mcp.Enum("mild", "moderate", "severe")),
	mcp.WithString("injury_type", mcp.Description("e.g. strain, sprain, tendinitis")),
	mcp.WithString("notes", mcp.Description("Free text")),
)

var toolUpdateInjury = mcp.NewTool("update_injury",
	mcp.WithDescription("Update an injury's pain level, status or notes. Set status to 'healed' to stop it affecting training; injuries are never deleted."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Injury ID")),
	mcp.WithNumber("pain_level", mcp.Description("New pain 1-10"), mcp.Min(1), mcp.Max(10)),
	mcp.WithString("status", mcp.Description("New status"), mcp.Enum("active", "rehab", "healed")),
	mcp.WithString("notes", mcp.Description("Replacement notes")),
)

var toolListInjuries = mcp.NewTool("list_injuries",
	mcp.WithDescription("List injuries, newest first. Healed injuries are excluded unless include_healed is set."),
	mcp.WithBoolean("include_healed", mcp.Description("Include healed injuries")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("Filter the strength exercise catalog by focus and equipment, optionally dropping exercises blocked by active injuries."),
	mcp.WithString("focus", mcp.Description("Muscle focus. Defaults to Full Body."), mcp.Enum(foci()...)),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment tags")),
	mcp.WithBoolean("skip_injured", mcp.Description("Drop exercises blocked by active injuries")),
)

var toolGetSubstitute = mcp.NewTool("get_substitute",
	mcp.WithDescription("Preferred substitute for an exercise (exact catalog name). Returns 'Rest' when none is known."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, e.g. 'Back Squat'")),
)

// --- Tool handlers ---

// failure turns a data source error into a tool error result. Invalid input
// is reported verbatim; anything else is logged.
func (h *handlers) failure(tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, athlete.ErrInvalidInput), errors.Is(err, athlete.ErrInjuryNotFound):
		return mcp.NewToolResultError(err.Error())
	default:
		h.log.Error("mcp "+tool, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error())
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed")
	}
	return result
}

func (h *handlers) getReadiness(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rep, err := h.ds.Readiness(ctx, UserIDFromContext(ctx))
	if err != nil {
		return h.failure("get_readiness", err), nil
	}
	return jsonResult(rep), nil
}

func (h *handlers) getFatigue(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.ds.Fatigue(ctx, UserIDFromContext(ctx))
	if err != nil {
		return h.failure("get_fatigue", err), nil
	}
	return jsonResult(st), nil
}

func (h *handlers) generateSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := h.ds.GeneratePlan(ctx, UserIDFromContext(ctx), athlete.PlanRequest{
		Discipline: req.GetString("discipline", ""),
		Difficulty: req.GetString("difficulty", ""),
		Equipment:  splitList(req.GetString("equipment", "")),
		Minutes:    req.GetInt("minutes", 0),
	})
	if err != nil {
		return h.failure("generate_session", err), nil
	}
	return jsonResult(plan), nil
}

func (h *handlers) evaluateCheckIn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fatigueLevel, err := req.RequireInt("fatigue_level")
	if err != nil {
		return mcp.NewToolResultError("fatigue_level parameter is required"), nil
	}
	sleep, err := req.RequireFloat("sleep_hours")
	if err != nil {
		return mcp.NewToolResultError("sleep_hours parameter is required"), nil
	}
	motivation, err := req.RequireInt("motivation")
	if err != nil {
		return mcp.NewToolResultError("motivation parameter is required"), nil
	}

	ev, err := h.ds.CheckIn(ctx, UserIDFromContext(ctx), athlete.CheckIn{
		FatigueLevel: fatigueLevel,
		SleepHours:   sleep,
		Soreness:     splitList(req.GetString("soreness", "")),
		Motivation:   motivation,
	})
	if err != nil {
		return h.failure("evaluate_checkin", err), nil
	}
	return jsonResult(ev), nil
}

func (h *handlers) logSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	discipline, err := req.RequireString("discipline")
	if err != nil {
		return mcp.NewToolResultError("discipline parameter is required"), nil
	}
	rpe, err := req.RequireInt("rpe")
	if err != nil {
		return mcp.NewToolResultError("rpe parameter is required"), nil
	}
	minutes, err := req.RequireInt("duration_minutes")
	if err != nil {
		return mcp.NewToolResultError("duration_minutes parameter is required"), nil
	}

	st, err := h.ds.LogSession(ctx, UserIDFromContext(ctx), athlete.SessionLog{
		Discipline:      discipline,
		ImpactType:      req.GetString("impact_type", ""),
		RPE:             rpe,
		DurationMinutes: minutes,
		Notes:           req.GetString("notes", ""),
	})
	if err != nil {
		return h.failure("log_session", err), nil
	}
	return jsonResult(st), nil
}

func (h *handlers) recentSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.ds.RecentSessions(ctx, UserIDFromContext(ctx), req.GetInt("limit", 0))
	if err != nil {
		return h.failure("recent_sessions", err), nil
	}
	return jsonResult(sessions), nil
}

func (h *handlers) reportInjury(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bodyPart, err := req.RequireString("body_part")
	if err != nil {
		return mcp.NewToolResultError("body_part parameter is required"), nil
	}
	pain, err := req.RequireInt("pain_level")
	if err != nil {
		return mcp.NewToolResultError("pain_level parameter is required"), nil
	}

	inj, err := h.ds.ReportInjury(ctx, UserIDFromContext(ctx), athlete.InjuryReport{
		BodyPart:   bodyPart,
		InjuryType: req.GetString("injury_type", ""),
		Severity:   req.GetString("severity", ""),
		PainLevel:  pain,
		Notes:      req.GetString("notes", ""),
	})
	if err != nil {
		return h.failure("report_injury", err), nil
	}
	return jsonResult(inj), nil
}

func (h *handlers) updateInjury(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	var upd models.InjuryUpdate
	args := req.GetArguments()
	if _, ok := args["pain_level"]; ok {
		p := req.GetInt("pain_level", 0)
		upd.PainLevel = &p
	}
	if s := req.GetString("status", ""); s != "" {
		st := models.InjuryStatus(s)
		upd.Status = &st
	}
	if _, ok := args["notes"]; ok {
		n := req.GetString("notes", "")
		upd.Notes = &n
	}

	inj, err := h.ds.UpdateInjury(ctx, UserIDFromContext(ctx), int64(id), upd)
	if err != nil {
		return h.failure("update_injury", err), nil
	}
	return jsonResult(inj), nil
}

func (h *handlers) listInjuries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	injuries, err := h.ds.Injuries(ctx, UserIDFromContext(ctx), !req.GetBool("include_healed", false))
	if err != nil {
		return h.failure("list_injuries", err), nil
	}
	return jsonResult(injuries), nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx, UserIDFromContext(ctx), athlete.ExerciseQuery{
		Focus:       req.GetString("focus", ""),
		Equipment:   splitList(req.GetString("equipment", "")),
		SkipInjured: req.GetBool("skip_injured", false),
	})
	if err != nil {
		return h.failure("list_exercises", err), nil
	}
	return jsonResult(exercises), nil
}

func (h *handlers) getSubstitute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	sub, err := h.ds.Substitute(ctx, name)
	if err != nil {
		return h.failure("get_substitute", err), nil
	}
	return jsonResult(map[string]string{"exercise": name, "substitute": sub}), nil
}
