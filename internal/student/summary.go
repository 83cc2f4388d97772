package student

import (
	"math"
	"time"
)

// ProgressSummary is the aggregate progress view exposed to the agent.
type ProgressSummary struct {
	TotalSessions      int        `json:"total_sessions"`
	TotalStudyMinutes  int        `json:"total_study_time_minutes"`
	TotalStudyHours    float64    `json:"total_study_time_hours"`
	StudyStreak        int        `json:"study_streak"`
	SubjectsCount      int        `json:"subjects_count"`
	SubjectsStudied    []string   `json:"subjects_studied"`
	AchievementsCount  int        `json:"achievements_count"`
	RecentAchievements []string   `json:"recent_achievements"`
	ActiveGoals        int        `json:"active_goals"`
	CompletedGoals     int        `json:"completed_goals"`
	LastStudyDate      *time.Time `json:"last_study_date"`
}

// ProgressSummary computes totals across subjects, goals and achievements.
func (s *Store) ProgressSummary() ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	totalMinutes := 0
	subjects := make([]string, 0, len(p.Progress.SubjectsStudied))
	// Report subjects in the order they were added; subjects_studied keys
	// are a subset-or-equal of the subjects list by invariant, but a
	// hand-edited file may hold extras, so sweep the map too.
	for _, subj := range p.Subjects {
		if _, ok := p.Progress.SubjectsStudied[subj]; ok {
			subjects = append(subjects, subj)
		}
	}
	for subj, sp := range p.Progress.SubjectsStudied {
		totalMinutes += sp.TotalTime
		if !contains(subjects, subj) {
			subjects = append(subjects, subj)
		}
	}

	active, completed := 0, 0
	for _, g := range p.Goals {
		if g.Completed {
			completed++
		} else {
			active++
		}
	}

	recent := p.Progress.Achievements
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	return ProgressSummary{
		TotalSessions:      p.Progress.TotalSessions,
		TotalStudyMinutes:  totalMinutes,
		TotalStudyHours:    math.Round(float64(totalMinutes)/60*10) / 10,
		StudyStreak:        p.Progress.StudyStreak,
		SubjectsCount:      len(p.Progress.SubjectsStudied),
		SubjectsStudied:    subjects,
		AchievementsCount:  len(p.Progress.Achievements),
		RecentAchievements: recent,
		ActiveGoals:        active,
		CompletedGoals:     completed,
		LastStudyDate:      p.Progress.LastStudyDate,
	}
}

// RecentSessions returns up to limit sessions, most recent first.
// A non-positive limit defaults to 10.
func (s *Store) RecentSessions(limit int) []SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}

	p := s.load()
	history := p.History
	if len(history) > limit {
		history = history[len(history)-limit:]
	}

	out := make([]SessionRecord, len(history))
	for i, rec := range history {
		out[len(history)-1-i] = rec
	}
	return out
}
