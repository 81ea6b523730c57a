package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/mcp"
	"github.com/meltforce/hybridcoach/internal/models"
)

// print writes v as indented JSON with --json, otherwise the rendered text.
func (a *app) print(v any, rendered func() string) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(a.out, rendered())
	return err
}

func newReadinessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Show today's readiness score and what drives it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.ds.Readiness(cmd.Context(), localUserID)
			if err != nil {
				return err
			}
			return a.print(rep, func() string { return renderReadiness(rep) })
		},
	}
}

func newFatigueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fatigue",
		Short: "Show current fatigue per system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.ds.Fatigue(cmd.Context(), localUserID)
			if err != nil {
				return err
			}
			return a.print(st, func() string { return renderState(st) })
		},
	}
}

func newPlanCmd(a *app) *cobra.Command {
	var req athlete.PlanRequest
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a session from current fatigue and injuries",
		Example: `  hybridcoach plan --discipline boxing --minutes 45
  hybridcoach plan -d strength --equipment barbell,dumbbells`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.ds.GeneratePlan(cmd.Context(), localUserID, req)
			if err != nil {
				return err
			}
			return a.print(plan, func() string { return renderPlan(plan) })
		},
	}
	f := cmd.Flags()
	f.StringVarP(&req.Discipline, "discipline", "d", "Strength", "Strength, Boxing, Cardio or Athletics")
	f.StringVar(&req.Difficulty, "difficulty", "Intermediate", "Beginner, Intermediate or Advanced")
	f.IntVarP(&req.Minutes, "minutes", "m", 60, "session length in minutes")
	f.StringSliceVarP(&req.Equipment, "equipment", "e", nil, "available equipment tags")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var in athlete.CheckIn
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Run the morning go/no-go check-in",
		Example: "  hybridcoach check --fatigue 4 --sleep 7.5 --motivation 8 --soreness legs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.ds.CheckIn(cmd.Context(), localUserID, in)
			if err != nil {
				return err
			}
			return a.print(ev, func() string { return renderEvaluation(ev) })
		},
	}
	f := cmd.Flags()
	f.IntVar(&in.FatigueLevel, "fatigue", 0, "self-reported fatigue 0-10")
	f.Float64Var(&in.SleepHours, "sleep", 0, "hours slept")
	f.IntVar(&in.Motivation, "motivation", 5, "self-reported motivation 0-10")
	f.StringSliceVar(&in.Soreness, "soreness", nil, "sore areas")
	_ = cmd.MarkFlagRequired("sleep")
	return cmd
}

func newLogCmd(a *app) *cobra.Command {
	var in athlete.SessionLog
	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Log a completed session",
		Example: "  hybridcoach log --discipline boxing --rpe 8 --minutes 45",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.ds.LogSession(cmd.Context(), localUserID, in)
			if err != nil {
				return err
			}
			return a.print(st, func() string { return renderState(st) })
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.Discipline, "discipline", "d", "", "Boxing, Strength, Cardio or Athletics")
	f.IntVar(&in.RPE, "rpe", 0, "rate of perceived exertion 1-10")
	f.IntVarP(&in.DurationMinutes, "minutes", "m", 0, "duration in minutes")
	f.StringVar(&in.ImpactType, "impact", "", "override the derived impact type")
	f.StringVar(&in.Notes, "notes", "", "free text; strength notes mentioning legs count as a leg day")
	_ = cmd.MarkFlagRequired("discipline")
	_ = cmd.MarkFlagRequired("rpe")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newSessionsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recently logged sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := a.ds.RecentSessions(cmd.Context(), localUserID, limit)
			if err != nil {
				return err
			}
			return a.print(sessions, func() string { return renderSessions(sessions) })
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions")
	return cmd
}

func newInjuryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "injury",
		Short: "Report, list and update injuries",
	}

	var report athlete.InjuryReport
	add := &cobra.Command{
		Use:     "add",
		Short:   "Report a new injury",
		Example: "  hybridcoach injury add --part shoulder --pain 6 --severity moderate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inj, err := a.ds.ReportInjury(cmd.Context(), localUserID, report)
			if err != nil {
				return err
			}
			return a.print(inj, func() string { return renderInjuries([]models.Injury{*inj}) })
		},
	}
	af := add.Flags()
	af.StringVar(&report.BodyPart, "part", "", "body part (shoulder, knee, lower_back, ankle, wrist, elbow, hip, general)")
	af.IntVar(&report.PainLevel, "pain", 0, "pain 1-10")
	af.StringVar(&report.Severity, "severity", "mild", "mild, moderate or severe")
	af.StringVar(&report.InjuryType, "type", "", "e.g. strain, sprain")
	af.StringVar(&report.Notes, "notes", "", "free text")
	_ = add.MarkFlagRequired("part")
	_ = add.MarkFlagRequired("pain")

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List injuries (active only unless --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			injuries, err := a.ds.Injuries(cmd.Context(), localUserID, !all)
			if err != nil {
				return err
			}
			return a.print(injuries, func() string { return renderInjuries(injuries) })
		},
	}
	list.Flags().BoolVar(&all, "all", false, "include healed injuries")

	var (
		pain   int
		status string
		notes  string
	)
	update := &cobra.Command{
		Use:     "update ID",
		Short:   "Update an injury's pain, status or notes",
		Example: "  hybridcoach injury update 3 --status healed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid injury id %q", args[0])
			}
			upd := updateFromFlags(cmd, pain, status, notes)
			inj, err := a.ds.UpdateInjury(cmd.Context(), localUserID, id, upd)
			if err != nil {
				return err
			}
			return a.print(inj, func() string { return renderInjuries([]models.Injury{*inj}) })
		},
	}
	uf := update.Flags()
	uf.IntVar(&pain, "pain", 0, "new pain 1-10")
	uf.StringVar(&status, "status", "", "active, rehab or healed")
	uf.StringVar(&notes, "notes", "", "replacement notes")

	cmd.AddCommand(add, list, update)
	return cmd
}

// updateFromFlags sets only the fields whose flags were given.
func updateFromFlags(cmd *cobra.Command, pain int, status, notes string) models.InjuryUpdate {
	var upd models.InjuryUpdate
	if cmd.Flags().Changed("pain") {
		upd.PainLevel = &pain
	}
	if cmd.Flags().Changed("status") {
		s := models.InjuryStatus(status)
		upd.Status = &s
	}
	if cmd.Flags().Changed("notes") {
		upd.Notes = &notes
	}
	return upd
}

func newExercisesCmd(a *app) *cobra.Command {
	var q athlete.ExerciseQuery
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Browse the strength exercise catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := a.ds.Exercises(cmd.Context(), localUserID, q)
			if err != nil {
				return err
			}
			return a.print(exercises, func() string { return renderExercises(exercises) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.Focus, "focus", "", "muscle focus (e.g. Legs, Push, Upper Body Strength)")
	f.StringSliceVarP(&q.Equipment, "equipment", "e", nil, "available equipment tags")
	f.BoolVar(&q.SkipInjured, "skip-injured", false, "hide exercises blocked by active injuries")
	return cmd
}

func newSubstituteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "substitute EXERCISE",
		Short:   "Suggest a replacement for an exercise",
		Example: `  hybridcoach substitute "Back Squat"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := a.ds.Substitute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := map[string]string{"exercise": args[0], "substitute": sub}
			return a.print(out, func() string {
				return args[0] + styles.muted.Render(" → ") + styles.label.Render(sub)
			})
		},
	}
}

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the coaching tools over MCP stdio",
		Long:  "Runs an MCP server on stdin/stdout. With --server the tools proxy to the remote API; otherwise they use the local state file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcp.New(a.ds, Version, a.log)
			a.log.Info("mcp stdio server starting")
			return mcpserver.ServeStdio(s)
		},
	}
}
