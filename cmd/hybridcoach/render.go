package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/readiness"
	"github.com/meltforce/hybridcoach/internal/safety"
)

var (
	colorGood  = lipgloss.Color("#2ECC71")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorBad   = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#7F8C8D")
	colorTitle = lipgloss.Color("#5DADE2")
)

var styles = struct {
	title, label, muted, good, warn, bad lipgloss.Style
	box, warnBox                         lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
	label: lipgloss.NewStyle().Bold(true),
	muted: lipgloss.NewStyle().Foreground(colorMuted),
	good:  lipgloss.NewStyle().Foreground(colorGood),
	warn:  lipgloss.NewStyle().Foreground(colorWarn),
	bad:   lipgloss.NewStyle().Foreground(colorBad).Bold(true),
	box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTitle).
		Padding(0, 1),
	warnBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBad).
		Padding(0, 1),
}

func statusStyle(s readiness.Status) lipgloss.Style {
	switch s {
	case readiness.StatusPrime:
		return styles.good
	case readiness.StatusTrainCaution:
		return styles.warn
	default:
		return styles.bad
	}
}

// gauge draws a 20-cell bar for a 0-100 fatigue value. Higher is worse.
func gauge(v float64) string {
	const width = 20
	filled := min(max(int(v/100*width+0.5), 0), width)
	style := styles.good
	switch {
	case v > 80:
		style = styles.bad
	case v > 50:
		style = styles.warn
	}
	return style.Render(strings.Repeat("█", filled)) + styles.muted.Render(strings.Repeat("░", width-filled))
}

func renderFatigue(v fatigue.Vector) string {
	rows := []struct {
		name string
		val  float64
	}{
		{"CNS", v.CNS},
		{"Upper", v.MuscularUpper},
		{"Lower", v.MuscularLower},
		{"Cardio", v.Cardio},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s %5.1f\n", styles.label.Render(fmt.Sprintf("%-7s", r.name)), gauge(r.val), r.val)
	}
	return b.String()
}

func renderReadiness(rep *athlete.ReadinessReport) string {
	var b strings.Builder
	header := fmt.Sprintf("Readiness %d/100  %s", rep.Score, statusStyle(rep.Status).Render(string(rep.Status)))
	b.WriteString(styles.title.Render(header) + "\n\n")
	for _, line := range rep.Breakdown {
		b.WriteString("  • " + line + "\n")
	}
	if len(rep.BlockedMovements) > 0 {
		b.WriteString("\n" + styles.label.Render("Blocked: ") + strings.Join(rep.BlockedMovements, ", ") + "\n")
	}
	b.WriteString("\n" + renderFatigue(rep.Fatigue))
	b.WriteString(styles.muted.Render(fmt.Sprintf("Phase %s, week %d", rep.Phase, rep.WeekInPhase)))
	return styles.box.Render(b.String())
}

func renderState(st *models.AthleteState) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("Fatigue  (readiness %d/100)", st.Fatigue.Readiness())) + "\n\n")
	b.WriteString(renderFatigue(st.Fatigue))
	if st.LastWorkoutAt != nil {
		b.WriteString(styles.muted.Render("Last workout " + st.LastWorkoutAt.Local().Format("Mon 2 Jan 15:04")))
	} else {
		b.WriteString(styles.muted.Render("No workouts logged"))
	}
	return styles.box.Render(b.String())
}

func renderPlan(p *composer.SessionPlan) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(p.Title) + "\n")
	b.WriteString(styles.muted.Render(fmt.Sprintf("%s · %d min · %s intensity", p.Focus, p.Duration, p.Intensity)) + "\n\n")
	for i, e := range p.Exercises {
		dose := e.Reps
		if e.Sets > 0 {
			dose = fmt.Sprintf("%d x %s", e.Sets, e.Reps)
		}
		line := fmt.Sprintf("%2d. %-34s %-12s", i+1, e.Name, dose)
		if e.Rest != "" {
			line += styles.muted.Render(" rest " + e.Rest)
		}
		b.WriteString(line + "\n")
		if e.Note != "" {
			b.WriteString(styles.muted.Render("    "+e.Note) + "\n")
		}
	}
	if p.Reasoning != "" {
		b.WriteString("\n" + styles.label.Render("Why: ") + p.Reasoning)
	}
	return styles.box.Render(strings.TrimRight(b.String(), "\n"))
}

func renderEvaluation(ev *safety.Evaluation) string {
	if ev.Warning != "" {
		return styles.warnBox.Render(styles.bad.Render(ev.Warning) + "\n" + ev.Recommendation)
	}
	style := styles.good
	if ev.Rule != safety.DefaultRule {
		style = styles.warn
	}
	return styles.box.Render(style.Render(ev.Recommendation))
}

func renderSessions(sessions []models.TrainingSession) string {
	if len(sessions) == 0 {
		return styles.muted.Render("No sessions logged.")
	}
	var b strings.Builder
	for _, s := range sessions {
		fmt.Fprintf(&b, "%s  %-10s %3d min  RPE %2d  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"), s.Discipline, s.DurationMinutes, s.RPE,
			styles.muted.Render(s.ImpactType))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderInjuries(injuries []models.Injury) string {
	if len(injuries) == 0 {
		return styles.good.Render("No injuries.")
	}
	var b strings.Builder
	for _, inj := range injuries {
		status := string(inj.Status)
		switch inj.Status {
		case models.InjuryHealed:
			status = styles.good.Render(status)
		case models.InjuryRehab:
			status = styles.warn.Render(status)
		default:
			status = styles.bad.Render(status)
		}
		fmt.Fprintf(&b, "#%-4d %-11s %-8s pain %2d/10  %s", inj.ID, inj.BodyPart, inj.Severity, inj.Pain(), status)
		if inj.Notes != "" {
			b.WriteString(styles.muted.Render("  " + inj.Notes))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderExercises(exercises []catalog.ExerciseSpec) string {
	if len(exercises) == 0 {
		return styles.muted.Render("No matching exercises.")
	}
	var b strings.Builder
	for _, e := range exercises {
		fmt.Fprintf(&b, "%-30s %-10s %-16s neural %d", e.Name, e.Type, e.Muscle, e.NeuralCost)
		if len(e.Flags) > 0 {
			b.WriteString(styles.warn.Render("  [" + strings.Join(e.Flags, ",") + "]"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
