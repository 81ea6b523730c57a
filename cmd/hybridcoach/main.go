// Command hybridcoach is the athlete-facing CLI. It runs the coaching engine
// against a local SQLite state file, or against a remote HybridCoach server
// when --server is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/config"
	"github.com/meltforce/hybridcoach/internal/localstate"
	"github.com/meltforce/hybridcoach/internal/logging"
	"github.com/meltforce/hybridcoach/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// localUserID owns all rows in a local state file.
const localUserID = 1

var _ athlete.Store = (*localstate.Store)(nil)

// app carries the resolved data source from PersistentPreRunE to the
// subcommands. The caller closes it after Execute returns.
type app struct {
	stateDir  string
	serverURL string
	apiKey    string
	logLevel  string
	jsonOut   bool

	out    io.Writer
	log    *slog.Logger
	ds     mcp.DataSource
	closer io.Closer
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hybridcoach"
	}
	return filepath.Join(home, ".hybridcoach")
}

// open resolves the data source. Logs go to stderr so stdout stays clean for
// rendered output and the MCP stdio transport.
func (a *app) open() error {
	a.log = logging.NewWithWriter(os.Stderr, config.LogConfig{Level: a.logLevel})

	if a.serverURL != "" {
		a.ds = mcp.NewHTTPClient(a.serverURL, a.apiKey)
		a.log.Debug("using remote server", "url", a.serverURL)
		return nil
	}

	store, err := localstate.Open(a.stateDir)
	if err != nil {
		return err
	}
	a.closer = store
	a.ds = athlete.New(store, nil, nil, a.log)
	a.log.Debug("using local state", "dir", a.stateDir)
	return nil
}

func (a *app) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Warn("closing state db", "error", err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hybridcoach",
		Short:         "Adaptive training decisions for hybrid athletes",
		Long:          "HybridCoach tracks fatigue and injuries, scores daily readiness, and generates strength, boxing, cardio and athletics sessions that respect both.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.stateDir, "state-dir", defaultStateDir(), "directory holding the local state database")
	pf.StringVar(&a.serverURL, "server", os.Getenv("HYBRIDCOACH_SERVER"), "remote HybridCoach server URL (overrides --state-dir)")
	pf.StringVar(&a.apiKey, "api-key", os.Getenv("HYBRIDCOACH_API_KEY"), "API key for the remote server")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.jsonOut, "json", false, "print raw JSON instead of formatted output")

	root.AddCommand(
		newReadinessCmd(a),
		newFatigueCmd(a),
		newPlanCmd(a),
		newCheckCmd(a),
		newLogCmd(a),
		newSessionsCmd(a),
		newInjuryCmd(a),
		newExercisesCmd(a),
		newSubstituteCmd(a),
		newMCPCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.bad.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
