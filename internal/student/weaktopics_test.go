package student

import (
	"strings"
	"testing"
	"time"
)

func TestAddWeakTopic_EachBucket(t *testing.T) {
	st := newTestStore(t)

	st.AddWeakTopic("Math", "fractions", BucketStruggling, "keeps flipping numerators")
	st.AddWeakTopic("Math", "decimals", BucketNeedsReview, "")
	st.AddWeakTopic("Science", "photosynthesis", BucketImprovementNeeded, "")

	p := st.Profile()
	if len(p.WeakTopics.StrugglingAreas) != 1 {
		t.Errorf("struggling = %d, want 1", len(p.WeakTopics.StrugglingAreas))
	}
	if len(p.WeakTopics.NeedsReview) != 1 {
		t.Errorf("needs_review = %d, want 1", len(p.WeakTopics.NeedsReview))
	}
	if _, ok := p.WeakTopics.ImprovementNeeded["Science:photosynthesis"]; !ok {
		t.Error("improvement_needed key 'Science:photosynthesis' missing")
	}
}

func TestAddWeakTopic_DedupePerBucket(t *testing.T) {
	st := newTestStore(t)

	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")
	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")

	p := st.Profile()
	if len(p.WeakTopics.StrugglingAreas) != 1 {
		t.Errorf("struggling = %d, want 1 (deduped)", len(p.WeakTopics.StrugglingAreas))
	}
}

func TestAddWeakTopic_SamePairInMultipleBuckets(t *testing.T) {
	st := newTestStore(t)

	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")
	st.AddWeakTopic("Math", "fractions", BucketNeedsReview, "")

	p := st.Profile()
	if len(p.WeakTopics.StrugglingAreas) != 1 || len(p.WeakTopics.NeedsReview) != 1 {
		t.Error("same pair should be allowed in different buckets")
	}
}

func TestAddWeakTopic_UnknownBucketIsNoOp(t *testing.T) {
	st := newTestStore(t)

	res := st.AddWeakTopic("Math", "fractions", "hopeless", "")

	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success (silent no-op)", res.Status)
	}
	p := st.Profile()
	if len(p.WeakTopics.StrugglingAreas)+len(p.WeakTopics.NeedsReview)+len(p.WeakTopics.ImprovementNeeded) != 0 {
		t.Error("unknown bucket must not mutate any bucket")
	}
}

func TestReviewWeakTopic_PriorityOrder(t *testing.T) {
	st := newTestStore(t)
	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")
	st.AddWeakTopic("Math", "fractions", BucketNeedsReview, "")

	res := st.ReviewWeakTopic("Math", "fractions", "")
	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success", res.Status)
	}

	p := st.Profile()
	// Only the struggling entry (highest priority) is updated.
	if p.WeakTopics.StrugglingAreas[0].TimesReviewed != 1 {
		t.Errorf("struggling TimesReviewed = %d, want 1", p.WeakTopics.StrugglingAreas[0].TimesReviewed)
	}
	if p.WeakTopics.NeedsReview[0].TimesReviewed != 0 {
		t.Errorf("needs_review TimesReviewed = %d, want 0", p.WeakTopics.NeedsReview[0].TimesReviewed)
	}
}

func TestReviewWeakTopic_AppendsNotes(t *testing.T) {
	st := newTestStore(t)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return fixed }
	st.AddWeakTopic("Math", "fractions", BucketStruggling, "original note")

	st.ReviewWeakTopic("Math", "fractions", "getting better")

	p := st.Profile()
	notes := p.WeakTopics.StrugglingAreas[0].Notes
	if !strings.HasPrefix(notes, "original note") {
		t.Errorf("original notes were replaced: %q", notes)
	}
	if !strings.Contains(notes, "| Review (") || !strings.Contains(notes, "getting better") {
		t.Errorf("review note not appended: %q", notes)
	}
	if p.WeakTopics.StrugglingAreas[0].LastReviewed == nil {
		t.Error("LastReviewed not set")
	}
}

func TestReviewWeakTopic_ImprovementNeededBucket(t *testing.T) {
	st := newTestStore(t)
	st.AddWeakTopic("Math", "fractions", BucketImprovementNeeded, "")

	st.ReviewWeakTopic("Math", "fractions", "")
	st.ReviewWeakTopic("Math", "fractions", "")

	p := st.Profile()
	entry := p.WeakTopics.ImprovementNeeded["Math:fractions"]
	if entry.TimesReviewed != 2 {
		t.Errorf("TimesReviewed = %d, want 2", entry.TimesReviewed)
	}
}

func TestReviewWeakTopic_NotFound(t *testing.T) {
	st := newTestStore(t)

	res := st.ReviewWeakTopic("Math", "fractions", "")

	if res.Status != StatusInfo {
		t.Errorf("status = %q, want info", res.Status)
	}
}

func TestRemoveWeakTopic_AllBuckets(t *testing.T) {
	st := newTestStore(t)
	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")
	st.AddWeakTopic("Math", "fractions", BucketNeedsReview, "")
	st.AddWeakTopic("Math", "fractions", BucketImprovementNeeded, "")
	st.AddWeakTopic("Math", "decimals", BucketStruggling, "")

	res := st.RemoveWeakTopic("Math", "fractions", "mastered")
	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success", res.Status)
	}

	p := st.Profile()
	if hasPair(p.WeakTopics.StrugglingAreas, "Math", "fractions") {
		t.Error("pair still in struggling bucket")
	}
	if hasPair(p.WeakTopics.NeedsReview, "Math", "fractions") {
		t.Error("pair still in needs_review bucket")
	}
	if _, ok := p.WeakTopics.ImprovementNeeded["Math:fractions"]; ok {
		t.Error("pair still in improvement_needed bucket")
	}
	// Unrelated pair untouched.
	if !hasPair(p.WeakTopics.StrugglingAreas, "Math", "decimals") {
		t.Error("unrelated pair was removed")
	}

	want := "Mastered weak topic: fractions in Math - mastered"
	if len(p.Progress.Achievements) != 1 || p.Progress.Achievements[0] != want {
		t.Errorf("achievements = %v, want [%q]", p.Progress.Achievements, want)
	}
}

func TestRemoveWeakTopic_NotFound(t *testing.T) {
	st := newTestStore(t)
	st.AddWeakTopic("Math", "decimals", BucketStruggling, "")

	res := st.RemoveWeakTopic("Math", "fractions", "mastered")

	if res.Status != StatusInfo {
		t.Fatalf("status = %q, want info", res.Status)
	}
	p := st.Profile()
	if len(p.WeakTopics.StrugglingAreas) != 1 {
		t.Error("absent pair removal must not mutate state")
	}
	if len(p.Progress.Achievements) != 0 {
		t.Error("no achievement expected for a no-op removal")
	}
}

func TestWeakTopicsSummary(t *testing.T) {
	st := newTestStore(t)
	st.AddWeakTopic("Math", "fractions", BucketStruggling, "")
	st.AddWeakTopic("Math", "decimals", BucketNeedsReview, "")
	st.AddWeakTopic("Science", "cells", BucketImprovementNeeded, "")
	st.ReviewWeakTopic("Math", "decimals", "")
	st.ReviewWeakTopic("Math", "decimals", "")
	st.ReviewWeakTopic("Science", "cells", "")

	sum := st.WeakTopicsSummary()

	if sum.TotalStruggling != 1 || sum.TotalNeedsReview != 1 || sum.TotalImprovementNeeded != 1 {
		t.Errorf("totals = %d/%d/%d, want 1/1/1",
			sum.TotalStruggling, sum.TotalNeedsReview, sum.TotalImprovementNeeded)
	}
	math := sum.BySubject["Math"]
	if len(math.Struggling) != 1 || len(math.NeedsReview) != 1 {
		t.Errorf("Math groups = %d struggling / %d needs_review, want 1/1", len(math.Struggling), len(math.NeedsReview))
	}
	science := sum.BySubject["Science"]
	if len(science.ImprovementNeeded) != 1 {
		t.Errorf("Science improvement_needed = %d, want 1", len(science.ImprovementNeeded))
	}

	if len(sum.MostReviewed) != 3 {
		t.Fatalf("most reviewed = %d entries, want 3", len(sum.MostReviewed))
	}
	if sum.MostReviewed[0].Topic != "decimals" {
		t.Errorf("most reviewed[0] = %q, want decimals", sum.MostReviewed[0].Topic)
	}
	if sum.MostReviewed[1].Topic != "cells" {
		t.Errorf("most reviewed[1] = %q, want cells", sum.MostReviewed[1].Topic)
	}
}

func TestWeakTopicsSummary_TopFiveCap(t *testing.T) {
	st := newTestStore(t)
	topics := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, topic := range topics {
		st.AddWeakTopic("Math", topic, BucketStruggling, "")
	}

	sum := st.WeakTopicsSummary()
	if len(sum.MostReviewed) != 5 {
		t.Errorf("most reviewed = %d entries, want 5", len(sum.MostReviewed))
	}
	// All ties: encounter order wins.
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if sum.MostReviewed[i].Topic != want {
			t.Errorf("most reviewed[%d] = %q, want %q", i, sum.MostReviewed[i].Topic, want)
		}
	}
}
