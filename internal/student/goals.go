package student

import "fmt"

// AddGoal appends a new learning goal. The id is the current goal count
// plus one; ids stay unique because goals are never deleted.
func (s *Store) AddGoal(description, targetDate string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	p.Goals = append(p.Goals, Goal{
		ID:          len(p.Goals) + 1,
		Description: description,
		TargetDate:  targetDate,
		CreatedAt:   s.now(),
	})

	if err := s.save(p); err != nil {
		return errorf("Failed to add goal")
	}
	return success(fmt.Sprintf("Goal added: %s", description))
}

// CompleteGoal marks the first goal with the given id as completed and
// records a deduped achievement. An unknown id reports an error result
// without mutating the goal list.
func (s *Store) CompleteGoal(goalID int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	for i := range p.Goals {
		if p.Goals[i].ID != goalID {
			continue
		}
		now := s.now()
		p.Goals[i].Completed = true
		p.Goals[i].CompletedAt = &now

		addAchievement(&p.Progress, fmt.Sprintf("Completed goal: %s", p.Goals[i].Description))

		if err := s.save(p); err != nil {
			return errorf("Failed to update goal")
		}
		return success(fmt.Sprintf("Goal '%s' marked as completed!", p.Goals[i].Description))
	}

	return errorf(fmt.Sprintf("Goal with ID %d not found", goalID))
}

// addAchievement appends an achievement string unless already present.
func addAchievement(prog *Progress, achievement string) {
	if !contains(prog.Achievements, achievement) {
		prog.Achievements = append(prog.Achievements, achievement)
	}
}
