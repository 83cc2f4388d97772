package student

import "time"

// Profile is the single student document persisted as one JSON file.
// Field names match the on-disk schema exactly.
type Profile struct {
	StudentID   string          `json:"student_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	GradeLevel  string          `json:"grade_level"`
	Subjects    []string        `json:"subjects"`
	Preferences Preferences     `json:"learning_preferences"`
	Progress    Progress        `json:"progress"`
	WeakTopics  WeakTopics      `json:"weak_topics"`
	History     []SessionRecord `json:"session_history"`
	Goals       []Goal          `json:"goals"`
	Notes       string          `json:"notes"`
	CreatedAt   *time.Time      `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

// Preferences holds the student's learning preferences.
type Preferences struct {
	LearningStyle   string   `json:"learning_style"`
	DifficultyLevel string   `json:"difficulty_level"`
	PreferredTopics []string `json:"preferred_topics"`
}

// Progress tracks overall study progress across all subjects.
type Progress struct {
	TotalSessions   int                         `json:"total_sessions"`
	SubjectsStudied map[string]*SubjectProgress `json:"subjects_studied"`
	Achievements    []string                    `json:"achievements"`
	StudyStreak     int                         `json:"study_streak"`
	LastStudyDate   *time.Time                  `json:"last_study_date"`
}

// SubjectProgress aggregates sessions for a single subject.
type SubjectProgress struct {
	Sessions      int        `json:"sessions"`
	TotalTime     int        `json:"total_time_minutes"`
	LastStudied   *time.Time `json:"last_studied"`
	TopicsCovered []string   `json:"topics_covered"`
}

// SessionRecord is one entry in the session history.
type SessionRecord struct {
	Date     time.Time `json:"date"`
	Subject  string    `json:"subject"`
	Duration int       `json:"duration_minutes"`
	Topics   []string  `json:"topics_covered"`
	Notes    string    `json:"notes"`
}

// Goal is a learning goal. IDs are assigned as count+1 at creation and are
// never reused because goals are only ever completed, not deleted.
type Goal struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	TargetDate  string     `json:"target_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// WeakTopics groups topics the student struggles with into three buckets.
// A (subject, topic) pair is unique within a bucket but may appear in
// several buckets at once.
type WeakTopics struct {
	StrugglingAreas   []WeakTopicEntry          `json:"struggling_areas"`
	NeedsReview       []WeakTopicEntry          `json:"needs_review"`
	ImprovementNeeded map[string]WeakTopicEntry `json:"improvement_needed"`
}

// WeakTopicEntry is one tracked weak topic.
type WeakTopicEntry struct {
	Subject        string     `json:"subject"`
	Topic          string     `json:"topic"`
	DateIdentified time.Time  `json:"date_identified"`
	Notes          string     `json:"notes"`
	TimesReviewed  int        `json:"times_reviewed"`
	LastReviewed   *time.Time `json:"last_reviewed"`
}

// Weak topic bucket names.
const (
	BucketStruggling        = "struggling"
	BucketNeedsReview       = "needs_review"
	BucketImprovementNeeded = "improvement_needed"
)

// improvementKey builds the map key for the improvement_needed bucket.
func improvementKey(subject, topic string) string {
	return subject + ":" + topic
}

// defaultProfile returns the default-initialized document used when the
// backing file is missing or unreadable.
func defaultProfile() *Profile {
	return &Profile{
		StudentID: "student_001",
		Name:      "Student",
		Subjects:  []string{},
		Preferences: Preferences{
			DifficultyLevel: "intermediate",
			PreferredTopics: []string{},
		},
		Progress: Progress{
			SubjectsStudied: map[string]*SubjectProgress{},
			Achievements:    []string{},
		},
		WeakTopics: WeakTopics{
			StrugglingAreas:   []WeakTopicEntry{},
			NeedsReview:       []WeakTopicEntry{},
			ImprovementNeeded: map[string]WeakTopicEntry{},
		},
		History: []SessionRecord{},
		Goals:   []Goal{},
	}
}

// normalize repairs nil collections after decoding a hand-edited or partial
// document so that later mutations never hit a nil map.
func (p *Profile) normalize() {
	if p.Subjects == nil {
		p.Subjects = []string{}
	}
	if p.Preferences.PreferredTopics == nil {
		p.Preferences.PreferredTopics = []string{}
	}
	if p.Progress.SubjectsStudied == nil {
		p.Progress.SubjectsStudied = map[string]*SubjectProgress{}
	}
	if p.Progress.Achievements == nil {
		p.Progress.Achievements = []string{}
	}
	if p.WeakTopics.StrugglingAreas == nil {
		p.WeakTopics.StrugglingAreas = []WeakTopicEntry{}
	}
	if p.WeakTopics.NeedsReview == nil {
		p.WeakTopics.NeedsReview = []WeakTopicEntry{}
	}
	if p.WeakTopics.ImprovementNeeded == nil {
		p.WeakTopics.ImprovementNeeded = map[string]WeakTopicEntry{}
	}
	if p.History == nil {
		p.History = []SessionRecord{}
	}
	if p.Goals == nil {
		p.Goals = []Goal{}
	}
}
