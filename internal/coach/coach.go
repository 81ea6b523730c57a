// Package coach answers athlete chat messages, either through a text
// generation backend or with canned keyword replies when none is available.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/meltforce/hybridcoach/internal/metrics"
	"github.com/meltforce/hybridcoach/internal/models"
)

// Generator produces a reply for a system prompt and a user message.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Coach wraps an optional Generator. A nil generator always falls back.
type Coach struct {
	gen Generator
	log *slog.Logger
}

func New(gen Generator, log *slog.Logger) *Coach {
	return &Coach{gen: gen, log: log}
}

const systemPrompt = `You are 'Hybrid Coach', an elite performance coach for hybrid athletes who combine strength, boxing and endurance work.
Give specific, actionable and empathetic advice based on the athlete's data.

CONTEXT DATA:
%s

GUIDELINES:
- Be concise but professional.
- If fatigue is high (>80%%), recommend rest or active recovery.
- Support goals of Strength, Boxing and Endurance.
- Answer directly.`

// SystemPrompt embeds the athlete context in the coach persona.
func SystemPrompt(athleteContext string) string {
	return fmt.Sprintf(systemPrompt, athleteContext)
}

// Reply answers message given the athlete context. It never fails: generator
// errors and empty replies degrade to Fallback.
func (c *Coach) Reply(ctx context.Context, athleteContext, message string) string {
	if c.gen == nil {
		return c.fallback(message)
	}
	reply, err := c.gen.Generate(ctx, SystemPrompt(athleteContext), message)
	if err != nil {
		c.log.Warn("coach generation failed, using fallback", "error", err)
		return c.fallback(message)
	}
	if strings.TrimSpace(reply) == "" {
		c.log.Warn("coach generation returned empty reply, using fallback")
		return c.fallback(message)
	}
	metrics.CoachReplies.WithLabelValues("generated").Inc()
	return reply
}

func (c *Coach) fallback(message string) string {
	metrics.CoachReplies.WithLabelValues("fallback").Inc()
	return Fallback(message)
}

// fallbackRules are checked in order; the first keyword hit wins.
var fallbackRules = []struct {
	keywords []string
	reply    string
}{
	{
		[]string{"tired", "exhausted"},
		"I see that you're feeling fatigued. Your CNS fatigue metrics are elevated. I strongly recommend switching to an Active Recovery session today. Focus on mobility and light flow to aid recovery without adding stress.",
	},
	{
		[]string{"hungry", "eat"},
		"Nutrition is key. Based on your training load today, aim for complex carbs and lean protein. A chicken and quinoa salad with avocado would be perfect for recovery.",
	},
	{
		[]string{"skip", "miss"},
		"It's okay to miss a session if your body needs it. Consistency over intensity. If you can, try to do just 15 minutes of movement to keep the streak alive, but don't stress about a full workout.",
	},
	{
		[]string{"pain", "hurt"},
		"Please prioritize safety. If you are experiencing sharp pain, stop immediately. Do not push through injury. I recommend consulting a physiotherapist.",
	},
}

// DefaultReply is returned when no keyword matches.
const DefaultReply = "I'm analyzing your data. You seem to be on track. Remember, hybrid training requires careful fatigue management. How is your sleep quality lately?"

// Fallback returns a canned reply chosen by keyword.
func Fallback(message string) string {
	msg := strings.ToLower(message)
	for _, r := range fallbackRules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return DefaultReply
}

// recentSessions is how many sessions BuildContext lists.
const recentSessions = 3

// BuildContext renders what the coach knows about the athlete. Any argument
// may be nil or empty; missing sections are omitted.
func BuildContext(state *models.AthleteState, sessions []models.TrainingSession, today *models.DailyLog) string {
	var b strings.Builder
	if state != nil {
		fmt.Fprintf(&b, "Fatigue State:\n- CNS: %.1f%%\n- Upper Body: %.1f%%\n- Lower Body: %.1f%%\n- Cardio: %.1f%%\n",
			state.Fatigue.CNS, state.Fatigue.MuscularUpper, state.Fatigue.MuscularLower, state.Fatigue.Cardio)
		fmt.Fprintf(&b, "- Phase: %s (week %d)\n", state.Phase, state.WeekInPhase)
	}
	if len(sessions) > 0 {
		b.WriteString("Recent Training:\n")
		for i, s := range sessions {
			if i == recentSessions {
				break
			}
			fmt.Fprintf(&b, "- %s (%s, RPE %d, %d min) on %s\n",
				s.Discipline, s.ImpactType, s.RPE, s.DurationMinutes, s.StartedAt.Format(time.DateOnly))
		}
	}
	if today != nil {
		b.WriteString("Today's Status:\n")
		fmt.Fprintf(&b, "- Sleep: %s\n", optional(today.SleepHours, "%.1f hrs"))
		fmt.Fprintf(&b, "- Mood: %s\n", optional(today.Mood, "%d/10"))
		fmt.Fprintf(&b, "- Soreness: %s\n", optional(today.Soreness, "%d/10"))
	}
	if b.Len() == 0 {
		return "No training history available."
	}
	return strings.TrimRight(b.String(), "\n")
}

func optional[T int | float64](v *T, format string) string {
	if v == nil {
		return "not reported"
	}
	return fmt.Sprintf(format, *v)
}
