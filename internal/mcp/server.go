package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("HybridCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithInstructions("HybridCoach adaptive training engine. Check readiness and fatigue, generate injury-aware sessions, run the morning safety check-in, and log completed sessions. All data is scoped to the authenticated athlete."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetReadiness, Handler: h.getReadiness},
		server.ServerTool{Tool: toolGetFatigue, Handler: h.getFatigue},
		server.ServerTool{Tool: toolGenerateSession, Handler: h.generateSession},
		server.ServerTool{Tool: toolEvaluateCheckIn, Handler: h.evaluateCheckIn},
		server.ServerTool{Tool: toolLogSession, Handler: h.logSession},
		server.ServerTool{Tool: toolRecentSessions, Handler: h.recentSessions},
		server.ServerTool{Tool: toolReportInjury, Handler: h.reportInjury},
		server.ServerTool{Tool: toolUpdateInjury, Handler: h.updateInjury},
		server.ServerTool{Tool: toolListInjuries, Handler: h.listInjuries},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetSubstitute, Handler: h.getSubstitute},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resAthleteState, Handler: h.athleteState},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resAthleteState = mcp.NewResource(
	"hybridcoach://athlete_state",
	"Athlete State",
	mcp.WithResourceDescription("Current decayed fatigue, readiness score, active injuries and blocked movements"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"hybridcoach://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("Every strength exercise with movement type, muscles, neural cost, injury flags and substitutes"),
	mcp.WithMIMEType("application/json"),
)
