package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/safety"
)

// HTTPClient implements DataSource by calling the HybridCoach REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server. The user is whoever the server
// authenticates; the userID arguments are ignored.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. An empty
// apiKey sends no X-API-Key header (tailnet deployments).
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends a request and decodes the JSON response into out (if non-nil).
// 400 and 404 responses map onto the service's sentinel errors so callers
// can treat local and remote sources alike.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", athlete.ErrInvalidInput, errorMessage(data))
	case resp.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/api/v1/injuries/"):
		return athlete.ErrInjuryNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, errorMessage(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} bodies, falling back to the raw text.
func errorMessage(data []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}

func (c *HTTPClient) Readiness(ctx context.Context, _ int) (*athlete.ReadinessReport, error) {
	var rep athlete.ReadinessReport
	if err := c.do(ctx, http.MethodGet, "/api/v1/readiness", nil, nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (c *HTTPClient) Fatigue(ctx context.Context, _ int) (*models.AthleteState, error) {
	var resp struct {
		State models.AthleteState `json:"state"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/fatigue", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.State, nil
}

func (c *HTTPClient) GeneratePlan(ctx context.Context, _ int, req athlete.PlanRequest) (*composer.SessionPlan, error) {
	var plan composer.SessionPlan
	if err := c.do(ctx, http.MethodPost, "/api/v1/plan", nil, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) CheckIn(ctx context.Context, _ int, in athlete.CheckIn) (*safety.Evaluation, error) {
	var ev safety.Evaluation
	if err := c.do(ctx, http.MethodPost, "/api/v1/checkin", nil, in, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *HTTPClient) LogSession(ctx context.Context, _ int, in athlete.SessionLog) (*models.AthleteState, error) {
	var st models.AthleteState
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", nil, in, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) RecentSessions(ctx context.Context, _ int, limit int) ([]models.TrainingSession, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	sessions := []models.TrainingSession{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/sessions", params, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *HTTPClient) ReportInjury(ctx context.Context, _ int, in athlete.InjuryReport) (*models.Injury, error) {
	var inj models.Injury
	if err := c.do(ctx, http.MethodPost, "/api/v1/injuries", nil, in, &inj); err != nil {
		return nil, err
	}
	return &inj, nil
}

func (c *HTTPClient) UpdateInjury(ctx context.Context, _ int, id int64, upd models.InjuryUpdate) (*models.Injury, error) {
	var inj models.Injury
	path := "/api/v1/injuries/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPatch, path, nil, upd, &inj); err != nil {
		return nil, err
	}
	return &inj, nil
}

func (c *HTTPClient) Injuries(ctx context.Context, _ int, activeOnly bool) ([]models.Injury, error) {
	params := url.Values{}
	if !activeOnly {
		params.Set("active", "false")
	}
	injuries := []models.Injury{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/injuries", params, nil, &injuries); err != nil {
		return nil, err
	}
	return injuries, nil
}

func (c *HTTPClient) Exercises(ctx context.Context, _ int, q athlete.ExerciseQuery) ([]catalog.ExerciseSpec, error) {
	params := url.Values{}
	if q.Focus != "" {
		params.Set("focus", q.Focus)
	}
	if len(q.Equipment) > 0 {
		params.Set("equipment", strings.Join(q.Equipment, ","))
	}
	if q.SkipInjured {
		params.Set("skip_injured", "true")
	}
	exercises := []catalog.ExerciseSpec{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog/exercises", params, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *HTTPClient) Substitute(ctx context.Context, name string) (string, error) {
	var resp struct {
		Substitute string `json:"substitute"`
	}
	params := url.Values{"name": {name}}
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog/substitute", params, nil, &resp); err != nil {
		return "", err
	}
	return resp.Substitute, nil
}
