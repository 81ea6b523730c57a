package athlete

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/meltforce/hybridcoach/internal/models"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	mu       sync.Mutex
	states   map[int]models.AthleteState
	sessions []models.TrainingSession
	injuries []models.Injury
	logs     map[logKey]models.DailyLog
	chat     []models.ChatMessage
	tasks    []models.DailyTask

	failStates bool
	failSave   map[int]bool
}

type logKey struct {
	user int
	day  time.Time
}

var errStore = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{
		states:   map[int]models.AthleteState{},
		logs:     map[logKey]models.DailyLog{},
		failSave: map[int]bool{},
	}
}

func (m *memStore) GetAthleteState(_ context.Context, userID int) (*models.AthleteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failStates {
		return nil, errStore
	}
	st, ok := m.states[userID]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (m *memStore) SaveAthleteState(_ context.Context, s models.AthleteState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave[s.UserID] {
		return errStore
	}
	m.states[s.UserID] = s
	return nil
}

func (m *memStore) ListAthleteStates(context.Context) ([]models.AthleteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AthleteState
	for _, s := range m.states {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b models.AthleteState) int { return a.UserID - b.UserID })
	return out, nil
}

func (m *memStore) ListUserIDs(context.Context) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int
	for id := range m.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *memStore) RecordSession(_ context.Context, s models.AthleteState, sess models.TrainingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[s.UserID] = s
	m.sessions = append(m.sessions, sess)
	k := logKey{sess.UserID, models.Day(sess.StartedAt)}
	l := m.logs[k]
	l.UserID, l.Date = k.user, k.day
	l.TrainingMinutes += sess.DurationMinutes
	m.logs[k] = l
	return nil
}

func (m *memStore) ListTrainingSessions(_ context.Context, userID, limit int) ([]models.TrainingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.TrainingSession
	for i := len(m.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.sessions[i].UserID == userID {
			out = append(out, m.sessions[i])
		}
	}
	return out, nil
}

func (m *memStore) InsertInjury(_ context.Context, i models.Injury) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i.ID = int64(len(m.injuries) + 1)
	m.injuries = append(m.injuries, i)
	return i.ID, nil
}

func (m *memStore) GetInjury(_ context.Context, userID int, id int64) (*models.Injury, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.injuries {
		if i.ID == id && i.UserID == userID {
			return &i, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateInjury(_ context.Context, upd models.Injury) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for n, i := range m.injuries {
		if i.ID == upd.ID && i.UserID == upd.UserID {
			m.injuries[n] = upd
		}
	}
	return nil
}

func (m *memStore) ListInjuries(_ context.Context, userID int, activeOnly bool) ([]models.Injury, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Injury
	for i := len(m.injuries) - 1; i >= 0; i-- {
		inj := m.injuries[i]
		if inj.UserID != userID || (activeOnly && !inj.Active()) {
			continue
		}
		out = append(out, inj)
	}
	return out, nil
}

func (m *memStore) GetDailyLog(_ context.Context, userID int, day time.Time) (*models.DailyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.logs[logKey{userID, models.Day(day)}]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *memStore) UpsertDailyLog(_ context.Context, l models.DailyLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.Date = models.Day(l.Date)
	m.logs[logKey{l.UserID, l.Date}] = l
	return nil
}

func (m *memStore) InsertChatMessage(_ context.Context, msg models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chat = append(m.chat, msg)
	return nil
}

func (m *memStore) ListChatMessages(_ context.Context, userID, limit int) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var mine []models.ChatMessage
	for _, c := range m.chat {
		if c.UserID == userID {
			mine = append(mine, c)
		}
	}
	if len(mine) > limit {
		mine = mine[len(mine)-limit:]
	}
	return mine, nil
}

func (m *memStore) EnsureDailyTasks(_ context.Context, userID int, day time.Time, tasks []models.DailyTask) ([]models.DailyTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	day = models.Day(day)
	var out []models.DailyTask
	for _, t := range m.tasks {
		if t.UserID == userID && t.Date.Equal(day) {
			out = append(out, t)
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	for _, t := range tasks {
		t.ID = int64(len(m.tasks) + 1)
		t.UserID, t.Date = userID, day
		m.tasks = append(m.tasks, t)
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) CompleteDailyTask(_ context.Context, userID int, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for n, t := range m.tasks {
		if t.ID == id && t.UserID == userID {
			m.tasks[n].Done = true
			return true, nil
		}
	}
	return false, nil
}
