package student

import (
	"fmt"
	"time"
)

// maxHistory caps session_history at the most recent entries.
const maxHistory = 50

// RecordSession appends a study session: bumps the global and per-subject
// counters, unions new topics into the subject's covered list, advances the
// day-granularity streak, and truncates history to the most recent 50.
func (s *Store) RecordSession(subject string, durationMinutes int, topicsCovered []string, notes string) SessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	now := s.now()

	p.Progress.TotalSessions++

	sp, ok := p.Progress.SubjectsStudied[subject]
	if !ok {
		sp = &SubjectProgress{TopicsCovered: []string{}}
		p.Progress.SubjectsStudied[subject] = sp
		// Keep the subjects list in sync with subjects_studied.
		if !contains(p.Subjects, subject) {
			p.Subjects = append(p.Subjects, subject)
		}
	}

	sp.Sessions++
	sp.TotalTime += durationMinutes
	sp.LastStudied = &now
	for _, topic := range topicsCovered {
		if !contains(sp.TopicsCovered, topic) {
			sp.TopicsCovered = append(sp.TopicsCovered, topic)
		}
	}

	updateStreak(&p.Progress, now)
	p.Progress.LastStudyDate = &now

	p.History = append(p.History, SessionRecord{
		Date:     now,
		Subject:  subject,
		Duration: durationMinutes,
		Topics:   topicsCovered,
		Notes:    notes,
	})
	if len(p.History) > maxHistory {
		p.History = p.History[len(p.History)-maxHistory:]
	}

	if err := s.save(p); err != nil {
		return SessionResult{Result: errorf("Failed to record study session")}
	}
	return SessionResult{
		Result:        success(fmt.Sprintf("Study session recorded: %d minutes of %s", durationMinutes, subject)),
		TotalSessions: p.Progress.TotalSessions,
		StudyStreak:   p.Progress.StudyStreak,
	}
}

// updateStreak advances the consecutive-day streak. A first-ever session
// starts the streak at 1; a session exactly one calendar day after the last
// extends it; a longer gap resets it to 1. A second session on the same day
// falls through every branch and leaves the streak untouched — observed
// behavior of the original data files, kept as-is.
func updateStreak(prog *Progress, now time.Time) {
	if prog.LastStudyDate == nil {
		prog.StudyStreak = 1
		return
	}
	days := calendarDaysBetween(*prog.LastStudyDate, now)
	switch {
	case days == 1:
		prog.StudyStreak++
	case days > 1:
		prog.StudyStreak = 1
	}
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aDay := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bDay := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
