package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/hybridcoach/internal/catalog"
)

func (h *handlers) athleteState(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	report, err := h.ds.Readiness(ctx, uid)
	if err != nil {
		return nil, err
	}

	injuries, err := h.ds.Injuries(ctx, uid, true)
	if err != nil {
		h.log.Warn("athlete_state: injury query failed", "error", err)
	}

	return jsonResource(req.Params.URI, map[string]any{
		"readiness": report,
		"injuries":  injuries,
	})
}

func (h *handlers) exerciseCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.All())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
