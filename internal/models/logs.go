package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is one user's record for a calendar day. Pointer fields are
// unknown until reported.
type DailyLog struct {
	UserID          int       `json:"user_id"`
	Date            time.Time `json:"date"`
	CaloriesIn      int       `json:"calories_in"`
	TrainingMinutes int       `json:"training_minutes"`
	RecoveryScore   *int      `json:"recovery_score,omitempty"`
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	Mood            *int      `json:"mood,omitempty"`
	Soreness        *int      `json:"soreness,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// DailyLogUpdate carries reported daily values. Nil fields are left as is.
type DailyLogUpdate struct {
	CaloriesIn *int     `json:"calories_in,omitempty" validate:"omitempty,gte=0,lte=20000"`
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	Mood       *int     `json:"mood,omitempty" validate:"omitempty,gte=1,lte=10"`
	Soreness   *int     `json:"soreness,omitempty" validate:"omitempty,gte=1,lte=10"`
	Notes      *string  `json:"notes,omitempty"`
}

// Apply merges u into l.
func (u DailyLogUpdate) Apply(l *DailyLog) {
	if u.CaloriesIn != nil {
		l.CaloriesIn = *u.CaloriesIn
	}
	if u.SleepHours != nil {
		l.SleepHours = u.SleepHours
	}
	if u.Mood != nil {
		l.Mood = u.Mood
	}
	if u.Soreness != nil {
		l.Soreness = u.Soreness
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
}

// Day truncates t to midnight UTC, the key for daily records.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TrainingSession is a completed, logged session.
type TrainingSession struct {
	ID              uuid.UUID `json:"id"`
	UserID          int       `json:"user_id"`
	Discipline      string    `json:"discipline"`
	ImpactType      string    `json:"impact_type"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
	RPE             int       `json:"rpe"`
	Notes           string    `json:"notes,omitempty"`
}

// ChatMessage is one turn of a coach conversation.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser  = "user"
	RoleCoach = "assistant"
)

// DailyTask is a reminder seeded once per user per day.
type DailyTask struct {
	ID          int64     `json:"id"`
	UserID      int       `json:"user_id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
}

// DefaultDailyTasks are the tasks every athlete gets each day.
var DefaultDailyTasks = []DailyTask{
	{Title: "Daily Training Session", Description: "Complete today's generated session or log what you did instead."},
	{Title: "Log Nutrition", Description: "Record calories and meals so recovery can be tracked."},
	{Title: "Recovery Check", Description: "Report sleep, mood and soreness to get a safety check."},
}
