package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/logging"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/safety"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// fakeSource records the arguments it was called with.
type fakeSource struct {
	userID     int
	plan       athlete.PlanRequest
	checkIn    athlete.CheckIn
	session    athlete.SessionLog
	report     athlete.InjuryReport
	update     models.InjuryUpdate
	updateID   int64
	activeOnly bool
	query      athlete.ExerciseQuery
	err        error
}

var _ DataSource = (*fakeSource)(nil)

func (f *fakeSource) Readiness(_ context.Context, uid int) (*athlete.ReadinessReport, error) {
	f.userID = uid
	return &athlete.ReadinessReport{FatigueReadiness: 90}, f.err
}

func (f *fakeSource) Fatigue(_ context.Context, uid int) (*models.AthleteState, error) {
	f.userID = uid
	return &models.AthleteState{UserID: uid}, f.err
}

func (f *fakeSource) GeneratePlan(_ context.Context, uid int, req athlete.PlanRequest) (*composer.SessionPlan, error) {
	f.userID, f.plan = uid, req
	if f.err != nil {
		return nil, f.err
	}
	return &composer.SessionPlan{Title: "Test Session", Duration: req.Minutes}, nil
}

func (f *fakeSource) CheckIn(_ context.Context, uid int, in athlete.CheckIn) (*safety.Evaluation, error) {
	f.userID, f.checkIn = uid, in
	return &safety.Evaluation{Rule: safety.DefaultRule}, f.err
}

func (f *fakeSource) LogSession(_ context.Context, uid int, in athlete.SessionLog) (*models.AthleteState, error) {
	f.userID, f.session = uid, in
	return &models.AthleteState{UserID: uid}, f.err
}

func (f *fakeSource) RecentSessions(_ context.Context, uid, _ int) ([]models.TrainingSession, error) {
	f.userID = uid
	return []models.TrainingSession{}, f.err
}

func (f *fakeSource) ReportInjury(_ context.Context, uid int, in athlete.InjuryReport) (*models.Injury, error) {
	f.userID, f.report = uid, in
	return &models.Injury{ID: 1, UserID: uid}, f.err
}

func (f *fakeSource) UpdateInjury(_ context.Context, uid int, id int64, upd models.InjuryUpdate) (*models.Injury, error) {
	f.userID, f.updateID, f.update = uid, id, upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.Injury{ID: id, UserID: uid}, nil
}

func (f *fakeSource) Injuries(_ context.Context, uid int, activeOnly bool) ([]models.Injury, error) {
	f.userID, f.activeOnly = uid, activeOnly
	return []models.Injury{}, f.err
}

func (f *fakeSource) Exercises(_ context.Context, uid int, q athlete.ExerciseQuery) ([]catalog.ExerciseSpec, error) {
	f.userID, f.query = uid, q
	return []catalog.ExerciseSpec{}, f.err
}

func (f *fakeSource) Substitute(_ context.Context, name string) (string, error) {
	return catalog.Substitute(name), f.err
}

func newTestHandlers(ds DataSource) *handlers {
	return &handlers{ds: ds, log: logging.Discard()}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

// TestGenerateSessionArguments verifies tool arguments (including the
// comma-separated equipment list) reach the data source with the caller's
// user ID.
func TestGenerateSessionArguments(t *testing.T) {
	src := &fakeSource{}
	h := newTestHandlers(src)
	ctx := WithUserID(context.Background(), 7)

	res, err := h.generateSession(ctx, callRequest("generate_session", map[string]any{
		"discipline": "Boxing",
		"difficulty": "Advanced",
		"minutes":    float64(45),
		"equipment":  "heavy_bag, jump_rope,",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	want := athlete.PlanRequest{Discipline: "Boxing", Difficulty: "Advanced", Minutes: 45, Equipment: []string{"heavy_bag", "jump_rope"}}
	if diff := cmp.Diff(want, src.plan); diff != "" {
		t.Errorf("plan request mismatch (-want +got):\n%s", diff)
	}
	if src.userID != 7 {
		t.Errorf("userID = %d, want 7", src.userID)
	}

	var plan composer.SessionPlan
	if err := json.Unmarshal([]byte(resultText(t, res)), &plan); err != nil {
		t.Fatal(err)
	}
	if plan.Title != "Test Session" || plan.Duration != 45 {
		t.Errorf("plan = %+v", plan)
	}
}

// TestRequiredArguments verifies tools reject calls missing required
// arguments without reaching the data source.
func TestRequiredArguments(t *testing.T) {
	h := newTestHandlers(&fakeSource{})
	ctx := context.Background()

	tests := []struct {
		name string
		call func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args map[string]any
	}{
		{"checkin without sleep", h.evaluateCheckIn, map[string]any{"fatigue_level": 3.0, "motivation": 5.0}},
		{"log without rpe", h.logSession, map[string]any{"discipline": "Boxing", "duration_minutes": 30.0}},
		{"injury without body part", h.reportInjury, map[string]any{"pain_level": 4.0}},
		{"update without id", h.updateInjury, map[string]any{"status": "healed"}},
		{"substitute without name", h.getSubstitute, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call(ctx, callRequest("x", tc.args))
			if err != nil {
				t.Fatal(err)
			}
			if !res.IsError {
				t.Error("expected tool error")
			}
		})
	}
}

// TestUpdateInjuryPartial verifies only supplied fields become non-nil in
// the update.
func TestUpdateInjuryPartial(t *testing.T) {
	src := &fakeSource{}
	h := newTestHandlers(src)

	res, err := h.updateInjury(context.Background(), callRequest("update_injury", map[string]any{
		"id":     float64(12),
		"status": "healed",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if src.updateID != 12 {
		t.Errorf("id = %d, want 12", src.updateID)
	}
	if src.update.Status == nil || *src.update.Status != models.InjuryHealed {
		t.Errorf("status = %v, want healed", src.update.Status)
	}
	if src.update.PainLevel != nil || src.update.Notes != nil {
		t.Errorf("unexpected fields set: %+v", src.update)
	}
}

// TestListInjuriesIncludeHealed verifies include_healed inverts the
// active-only filter.
func TestListInjuriesIncludeHealed(t *testing.T) {
	src := &fakeSource{}
	h := newTestHandlers(src)

	if _, err := h.listInjuries(context.Background(), callRequest("list_injuries", nil)); err != nil {
		t.Fatal(err)
	}
	if !src.activeOnly {
		t.Error("default should list active injuries only")
	}
	if _, err := h.listInjuries(context.Background(), callRequest("list_injuries", map[string]any{"include_healed": true})); err != nil {
		t.Fatal(err)
	}
	if src.activeOnly {
		t.Error("include_healed should list every injury")
	}
}

// TestCheckInSoreness verifies the soreness argument is split into areas.
func TestCheckInSoreness(t *testing.T) {
	src := &fakeSource{}
	h := newTestHandlers(src)

	_, err := h.evaluateCheckIn(context.Background(), callRequest("evaluate_checkin", map[string]any{
		"fatigue_level": 4.0,
		"sleep_hours":   7.5,
		"motivation":    6.0,
		"soreness":      "legs,shoulders",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := athlete.CheckIn{FatigueLevel: 4, SleepHours: 7.5, Motivation: 6, Soreness: []string{"legs", "shoulders"}}
	if diff := cmp.Diff(want, src.checkIn); diff != "" {
		t.Errorf("check-in mismatch (-want +got):\n%s", diff)
	}
}

// TestToolErrors verifies data source errors become tool errors rather than
// protocol errors.
func TestToolErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"invalid input", fmt.Errorf("%w: rpe out of range", athlete.ErrInvalidInput), "invalid input: rpe out of range"},
		{"not found", athlete.ErrInjuryNotFound, athlete.ErrInjuryNotFound.Error()},
		{"internal", errors.New("db down"), "query failed: db down"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandlers(&fakeSource{err: tc.err})
			res, err := h.updateInjury(context.Background(), callRequest("update_injury", map[string]any{"id": 3.0}))
			if err != nil {
				t.Fatal(err)
			}
			if !res.IsError {
				t.Fatal("expected tool error")
			}
			if got := resultText(t, res); got != tc.wantMsg {
				t.Errorf("message = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

// TestGetSubstitute verifies the substitute tool echoes the exercise.
func TestGetSubstitute(t *testing.T) {
	h := newTestHandlers(&fakeSource{})
	res, err := h.getSubstitute(context.Background(), callRequest("get_substitute", map[string]any{"exercise": "Back Squat"}))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if got["substitute"] != "Goblet Squat" {
		t.Errorf("substitute = %q, want Goblet Squat", got["substitute"])
	}
}

// TestNewRegistersTools verifies the server lists every tool.
func TestNewRegistersTools(t *testing.T) {
	s := New(&fakeSource{}, "test", logging.Discard())
	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Result.Tools) != 11 {
		t.Errorf("got %d tools, want 11", len(out.Result.Tools))
	}
}
