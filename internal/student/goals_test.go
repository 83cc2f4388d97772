package student

import "testing"

func TestAddGoal_AssignsSequentialIDs(t *testing.T) {
	st := newTestStore(t)

	st.AddGoal("Learn long division", "2026-04-01")
	st.AddGoal("Memorize times tables", "")

	p := st.Profile()
	if len(p.Goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(p.Goals))
	}
	if p.Goals[0].ID != 1 || p.Goals[1].ID != 2 {
		t.Errorf("goal IDs = %d, %d, want 1, 2", p.Goals[0].ID, p.Goals[1].ID)
	}
	if p.Goals[0].TargetDate != "2026-04-01" {
		t.Errorf("TargetDate = %q", p.Goals[0].TargetDate)
	}
	if p.Goals[1].TargetDate != "" {
		t.Errorf("TargetDate = %q, want empty", p.Goals[1].TargetDate)
	}
}

func TestCompleteGoal(t *testing.T) {
	st := newTestStore(t)
	st.AddGoal("Learn long division", "")

	res := st.CompleteGoal(1)

	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success", res.Status)
	}
	p := st.Profile()
	if !p.Goals[0].Completed {
		t.Error("goal not marked completed")
	}
	if p.Goals[0].CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	want := "Completed goal: Learn long division"
	if len(p.Progress.Achievements) != 1 || p.Progress.Achievements[0] != want {
		t.Errorf("achievements = %v, want [%q]", p.Progress.Achievements, want)
	}
}

func TestCompleteGoal_AchievementDeduped(t *testing.T) {
	st := newTestStore(t)
	st.AddGoal("Learn long division", "")

	st.CompleteGoal(1)
	st.CompleteGoal(1)

	p := st.Profile()
	if len(p.Progress.Achievements) != 1 {
		t.Errorf("achievements = %v, want a single deduped entry", p.Progress.Achievements)
	}
}

func TestCompleteGoal_NotFound(t *testing.T) {
	st := newTestStore(t)
	st.AddGoal("Learn long division", "")

	res := st.CompleteGoal(99)

	if res.Status != StatusError {
		t.Fatalf("status = %q, want error", res.Status)
	}
	p := st.Profile()
	if p.Goals[0].Completed {
		t.Error("unrelated goal was mutated")
	}
	if len(p.Progress.Achievements) != 0 {
		t.Errorf("achievements = %v, want none", p.Progress.Achievements)
	}
}
