package student

import "fmt"

// UpdateBasicInfo applies any provided fields to the student identity.
// created_at is set once, the first time basic info is written.
func (s *Store) UpdateBasicInfo(name, email, gradeLevel *string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	if name != nil {
		p.Name = *name
	}
	if email != nil {
		p.Email = *email
	}
	if gradeLevel != nil {
		p.GradeLevel = *gradeLevel
	}

	if p.CreatedAt == nil {
		now := s.now()
		p.CreatedAt = &now
	}

	if err := s.save(p); err != nil {
		return errorf("Failed to update student information")
	}
	return success("Student information updated successfully")
}

// AddSubject registers a subject. Adding an existing subject is a no-op
// reported as "info". New subjects get an empty progress entry so the
// subjects list and subjects_studied keys stay in sync.
func (s *Store) AddSubject(subject string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	for _, existing := range p.Subjects {
		if existing == subject {
			return info(fmt.Sprintf("Subject '%s' already exists", subject))
		}
	}

	p.Subjects = append(p.Subjects, subject)
	if _, ok := p.Progress.SubjectsStudied[subject]; !ok {
		p.Progress.SubjectsStudied[subject] = &SubjectProgress{
			TopicsCovered: []string{},
		}
	}

	if err := s.save(p); err != nil {
		return errorf("Failed to add subject")
	}
	return success(fmt.Sprintf("Subject '%s' added successfully", subject))
}

// UpdatePreferences applies any provided learning preference fields.
// preferredTopics replaces the list wholesale when non-nil.
func (s *Store) UpdatePreferences(learningStyle, difficultyLevel *string, preferredTopics []string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()

	if learningStyle != nil {
		p.Preferences.LearningStyle = *learningStyle
	}
	if difficultyLevel != nil {
		p.Preferences.DifficultyLevel = *difficultyLevel
	}
	if preferredTopics != nil {
		p.Preferences.PreferredTopics = preferredTopics
	}

	if err := s.save(p); err != nil {
		return errorf("Failed to update learning preferences")
	}
	return success("Learning preferences updated successfully")
}

// SetNotes replaces the free-text notes on the profile.
func (s *Store) SetNotes(notes string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	p.Notes = notes

	if err := s.save(p); err != nil {
		return errorf("Failed to update notes")
	}
	return success("Notes updated successfully")
}
