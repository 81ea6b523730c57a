package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/readiness"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by "METHOD path". Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientSendsAPIKey verifies the X-API-Key header and that the
// readiness report (with its embedded result) survives the round trip.
func TestHTTPClientSendsAPIKey(t *testing.T) {
	want := athlete.ReadinessReport{
		Result: readiness.Result{
			Score:          65,
			Status:         readiness.StatusTrainCaution,
			Breakdown:      []string{"Knee injury (pain 7/10): -35"},
			ActiveInjuries: []string{"knee"},
		},
		BlockedMovements: []string{"jumping", "squat"},
		FatigueReadiness: 80,
		Fatigue:          fatigue.Vector{CNS: 20},
		Phase:            models.PhaseAccumulation,
		WeekInPhase:      1,
	}
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/readiness": func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("X-API-Key"); got != "secret" {
				t.Errorf("X-API-Key=%q, want secret", got)
			}
			writeTestJSON(t, w, want)
		},
	})
	defer ts.Close()

	got, err := NewHTTPClient(ts.URL+"/", "secret").Readiness(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("readiness mismatch (-want +got):\n%s", diff)
	}
}

// TestHTTPClientFatigueUnwrapsState verifies the client reads the state out
// of the fatigue endpoint's envelope.
func TestHTTPClientFatigueUnwrapsState(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/fatigue": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{
				"state":     models.AthleteState{UserID: 4, Fatigue: fatigue.Vector{CNS: 55, Cardio: 10}},
				"readiness": 83,
			})
		},
	})
	defer ts.Close()

	st, err := NewHTTPClient(ts.URL, "").Fatigue(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if st.UserID != 4 || st.Fatigue.CNS != 55 {
		t.Errorf("state = %+v, want user 4 with CNS 55", st)
	}
}

// TestHTTPClientPostsJSON verifies request bodies are encoded with the
// same field names the server decodes.
func TestHTTPClientPostsJSON(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/plan": func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type=%q", ct)
			}
			var req athlete.PlanRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatal(err)
			}
			want := athlete.PlanRequest{Discipline: "Boxing", Minutes: 45, Equipment: []string{"heavy_bag"}}
			if diff := cmp.Diff(want, req); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
			writeTestJSON(t, w, composer.SessionPlan{Title: "Intermediate Boxing Session", Duration: 45})
		},
		"POST /api/v1/sessions": func(w http.ResponseWriter, r *http.Request) {
			var in athlete.SessionLog
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				t.Fatal(err)
			}
			if in.RPE != 7 || in.DurationMinutes != 30 {
				t.Errorf("session = %+v", in)
			}
			w.WriteHeader(http.StatusCreated)
			writeTestJSON(t, w, models.AthleteState{Fatigue: fatigue.Vector{CNS: 21}})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	plan, err := client.GeneratePlan(context.Background(), 1, athlete.PlanRequest{
		Discipline: "Boxing", Minutes: 45, Equipment: []string{"heavy_bag"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Title != "Intermediate Boxing Session" {
		t.Errorf("title=%q", plan.Title)
	}

	st, err := client.LogSession(context.Background(), 1, athlete.SessionLog{Discipline: "Cardio", RPE: 7, DurationMinutes: 30})
	if err != nil {
		t.Fatal(err)
	}
	if st.Fatigue.CNS != 21 {
		t.Errorf("cns=%v, want 21", st.Fatigue.CNS)
	}
}

// TestHTTPClientQueryParams verifies list endpoints encode their filters.
func TestHTTPClientQueryParams(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/injuries": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("active"); got != "false" {
				t.Errorf("active=%q, want false", got)
			}
			writeTestJSON(t, w, []models.Injury{{ID: 1, BodyPart: models.BodyPartKnee}})
		},
		"GET /api/v1/catalog/exercises": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("focus") != "Legs" || q.Get("equipment") != "barbell,dumbbells" || q.Get("skip_injured") != "true" {
				t.Errorf("query = %v", q)
			}
			writeTestJSON(t, w, []catalog.ExerciseSpec{{Name: "Goblet Squat"}})
		},
		"GET /api/v1/sessions": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, []models.TrainingSession{})
		},
		"GET /api/v1/catalog/substitute": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("name"); got != "Back Squat" {
				t.Errorf("name=%q", got)
			}
			writeTestJSON(t, w, map[string]string{"exercise": "Back Squat", "substitute": "Goblet Squat"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	ctx := context.Background()

	injuries, err := client.Injuries(ctx, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(injuries) != 1 {
		t.Errorf("got %d injuries, want 1", len(injuries))
	}

	exercises, err := client.Exercises(ctx, 1, athlete.ExerciseQuery{
		Focus: "Legs", Equipment: []string{"barbell", "dumbbells"}, SkipInjured: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 || exercises[0].Name != "Goblet Squat" {
		t.Errorf("exercises = %+v", exercises)
	}

	sessions, err := client.RecentSessions(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sessions == nil {
		t.Error("sessions should be non-nil")
	}

	sub, err := client.Substitute(ctx, "Back Squat")
	if err != nil {
		t.Fatal(err)
	}
	if sub != "Goblet Squat" {
		t.Errorf("substitute=%q", sub)
	}
}

// TestHTTPClientErrorMapping verifies status codes map onto the service's
// sentinel errors.
func TestHTTPClientErrorMapping(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/checkin": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			writeTestJSON(t, w, map[string]string{"error": "sleep_hours out of range"})
		},
		"PATCH /api/v1/injuries/99": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeTestJSON(t, w, map[string]string{"error": "injury not found"})
		},
		"GET /api/v1/readiness": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	ctx := context.Background()

	_, err := client.CheckIn(ctx, 1, athlete.CheckIn{SleepHours: 30})
	if !errors.Is(err, athlete.ErrInvalidInput) {
		t.Errorf("checkin err = %v, want ErrInvalidInput", err)
	}

	healed := models.InjuryHealed
	_, err = client.UpdateInjury(ctx, 1, 99, models.InjuryUpdate{Status: &healed})
	if !errors.Is(err, athlete.ErrInjuryNotFound) {
		t.Errorf("update err = %v, want ErrInjuryNotFound", err)
	}

	_, err = client.Readiness(ctx, 1)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, athlete.ErrInvalidInput) {
		t.Error("500 should not map to ErrInvalidInput")
	}
}
