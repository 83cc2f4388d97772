package student

import (
	"fmt"
	"sort"
	"time"
)

// AddWeakTopic inserts a (subject, topic) pair into the named bucket unless
// the pair is already there. Pairs are deduped per bucket only — the same
// pair may live in several buckets at once. Bucket names other than the
// three known ones produce no state change but still report success,
// matching the original behavior.
func (s *Store) AddWeakTopic(subject, topic, bucket, notes string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	entry := WeakTopicEntry{
		Subject:        subject,
		Topic:          topic,
		DateIdentified: s.now(),
		Notes:          notes,
	}

	switch bucket {
	case BucketStruggling:
		if !hasPair(p.WeakTopics.StrugglingAreas, subject, topic) {
			p.WeakTopics.StrugglingAreas = append(p.WeakTopics.StrugglingAreas, entry)
		}
	case BucketNeedsReview:
		if !hasPair(p.WeakTopics.NeedsReview, subject, topic) {
			p.WeakTopics.NeedsReview = append(p.WeakTopics.NeedsReview, entry)
		}
	case BucketImprovementNeeded:
		key := improvementKey(subject, topic)
		if _, ok := p.WeakTopics.ImprovementNeeded[key]; !ok {
			p.WeakTopics.ImprovementNeeded[key] = entry
		}
	}

	if err := s.save(p); err != nil {
		return errorf("Failed to add weak topic")
	}
	return success(fmt.Sprintf("Added '%s' in %s to %s list", topic, subject, bucket))
}

// ReviewWeakTopic marks a weak topic as reviewed. Buckets are searched in
// priority order — struggling, then needs_review, then improvement_needed —
// and only the first match is updated. Review notes are appended to the
// entry's notes, never replacing them.
func (s *Store) ReviewWeakTopic(subject, topic, notes string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	now := s.now()
	found := false

	if i := indexOfPair(p.WeakTopics.StrugglingAreas, subject, topic); i >= 0 {
		reviewEntry(&p.WeakTopics.StrugglingAreas[i], now, notes)
		found = true
	}

	if !found {
		if i := indexOfPair(p.WeakTopics.NeedsReview, subject, topic); i >= 0 {
			reviewEntry(&p.WeakTopics.NeedsReview[i], now, notes)
			found = true
		}
	}

	if !found {
		key := improvementKey(subject, topic)
		if entry, ok := p.WeakTopics.ImprovementNeeded[key]; ok {
			reviewEntry(&entry, now, notes)
			p.WeakTopics.ImprovementNeeded[key] = entry
			found = true
		}
	}

	if !found {
		return info(fmt.Sprintf("Topic '%s' in %s not found in weak topics", topic, subject))
	}

	if err := s.save(p); err != nil {
		return errorf("Failed to update weak topic")
	}
	return success(fmt.Sprintf("Updated review for '%s' in %s", topic, subject))
}

// RemoveWeakTopic deletes a (subject, topic) pair from every bucket it
// appears in. Removal from at least one bucket earns a deduped achievement;
// an absent pair is an "info" no-op.
func (s *Store) RemoveWeakTopic(subject, topic, reason string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason == "" {
		reason = "mastered"
	}

	p := s.load()
	removed := false

	if filtered := removePair(p.WeakTopics.StrugglingAreas, subject, topic); len(filtered) < len(p.WeakTopics.StrugglingAreas) {
		p.WeakTopics.StrugglingAreas = filtered
		removed = true
	}
	if filtered := removePair(p.WeakTopics.NeedsReview, subject, topic); len(filtered) < len(p.WeakTopics.NeedsReview) {
		p.WeakTopics.NeedsReview = filtered
		removed = true
	}
	key := improvementKey(subject, topic)
	if _, ok := p.WeakTopics.ImprovementNeeded[key]; ok {
		delete(p.WeakTopics.ImprovementNeeded, key)
		removed = true
	}

	if !removed {
		return info(fmt.Sprintf("Topic '%s' in %s not found in weak topics", topic, subject))
	}

	addAchievement(&p.Progress, fmt.Sprintf("Mastered weak topic: %s in %s - %s", topic, subject, reason))

	if err := s.save(p); err != nil {
		return errorf("Failed to remove weak topic")
	}
	return success(fmt.Sprintf("Removed '%s' from weak topics - %s!", topic, reason))
}

// SubjectWeakTopics groups one subject's weak topics by bucket.
type SubjectWeakTopics struct {
	Struggling        []WeakTopicEntry `json:"struggling"`
	NeedsReview       []WeakTopicEntry `json:"needs_review"`
	ImprovementNeeded []WeakTopicEntry `json:"improvement_needed"`
}

// WeakTopicsSummary is the aggregate view over all three buckets.
type WeakTopicsSummary struct {
	TotalStruggling        int                          `json:"total_struggling"`
	TotalNeedsReview       int                          `json:"total_needs_review"`
	TotalImprovementNeeded int                          `json:"total_improvement_needed"`
	BySubject              map[string]SubjectWeakTopics `json:"by_subject"`
	MostReviewed           []WeakTopicEntry             `json:"most_reviewed_topics"`
}

// WeakTopicsSummary groups all weak topics by subject and reports the five
// most-reviewed entries across all buckets. Ties keep encounter order:
// struggling entries first, then needs_review, then improvement_needed in
// sorted key order (maps have no insertion order to preserve).
func (s *Store) WeakTopicsSummary() WeakTopicsSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	wt := p.WeakTopics

	summary := WeakTopicsSummary{
		TotalStruggling:        len(wt.StrugglingAreas),
		TotalNeedsReview:       len(wt.NeedsReview),
		TotalImprovementNeeded: len(wt.ImprovementNeeded),
		BySubject:              map[string]SubjectWeakTopics{},
	}

	var all []WeakTopicEntry

	for _, e := range wt.StrugglingAreas {
		group := summary.BySubject[e.Subject]
		group.Struggling = append(group.Struggling, e)
		summary.BySubject[e.Subject] = group
		all = append(all, e)
	}
	for _, e := range wt.NeedsReview {
		group := summary.BySubject[e.Subject]
		group.NeedsReview = append(group.NeedsReview, e)
		summary.BySubject[e.Subject] = group
		all = append(all, e)
	}

	keys := make([]string, 0, len(wt.ImprovementNeeded))
	for k := range wt.ImprovementNeeded {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e := wt.ImprovementNeeded[k]
		group := summary.BySubject[e.Subject]
		group.ImprovementNeeded = append(group.ImprovementNeeded, e)
		summary.BySubject[e.Subject] = group
		all = append(all, e)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TimesReviewed > all[j].TimesReviewed
	})
	if len(all) > 5 {
		all = all[:5]
	}
	summary.MostReviewed = all

	return summary
}

func reviewEntry(e *WeakTopicEntry, now time.Time, notes string) {
	e.TimesReviewed++
	e.LastReviewed = &now
	if notes != "" {
		e.Notes += fmt.Sprintf(" | Review (%s): %s", now.Format(time.RFC3339), notes)
	}
}

func hasPair(entries []WeakTopicEntry, subject, topic string) bool {
	return indexOfPair(entries, subject, topic) >= 0
}

func indexOfPair(entries []WeakTopicEntry, subject, topic string) int {
	for i, e := range entries {
		if e.Subject == subject && e.Topic == topic {
			return i
		}
	}
	return -1
}

func removePair(entries []WeakTopicEntry, subject, topic string) []WeakTopicEntry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.Subject == subject && e.Topic == topic {
			continue
		}
		out = append(out, e)
	}
	return out
}
