package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"studybuddy_backend/internal/student"
)

// RegisterStudentTools binds every student store operation as a tool.
func RegisterStudentTools(r *Registry, store *student.Store) {
	r.MustRegister(Tool{
		Name:        "get_student_profile",
		Description: "Get the complete student profile: progress, subjects, goals, weak topics, preferences and session history.",
		InputSchema: objectSchema(nil, nil),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return marshalJSON(store.Profile())
		},
	})

	r.MustRegister(Tool{
		Name:        "update_student_info",
		Description: "Update the student's basic information. Only provided fields change.",
		InputSchema: objectSchema(map[string]any{
			"name":        map[string]any{"type": "string", "description": "Student's name"},
			"email":       map[string]any{"type": "string", "description": "Student's email address"},
			"grade_level": map[string]any{"type": "string", "description": "Grade level, e.g. '9th grade' or 'college'"},
		}, nil),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Name       *string `json:"name"`
				Email      *string `json:"email"`
				GradeLevel *string `json:"grade_level"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.UpdateBasicInfo(args.Name, args.Email, args.GradeLevel))
		},
	})

	r.MustRegister(Tool{
		Name:        "add_subject",
		Description: "Add a subject to the student's study list.",
		InputSchema: objectSchema(map[string]any{
			"subject": map[string]any{"type": "string", "description": "Subject name, e.g. 'Math'"},
		}, []string{"subject"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Subject string `json:"subject"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.AddSubject(args.Subject))
		},
	})

	r.MustRegister(Tool{
		Name:        "update_learning_preferences",
		Description: "Update how the student prefers to learn. Only provided fields change.",
		InputSchema: objectSchema(map[string]any{
			"learning_style":   map[string]any{"type": "string", "description": "visual, auditory, kinesthetic or reading"},
			"difficulty_level": map[string]any{"type": "string", "description": "beginner, intermediate or advanced"},
			"preferred_topics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		}, nil),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				LearningStyle   *string  `json:"learning_style"`
				DifficultyLevel *string  `json:"difficulty_level"`
				PreferredTopics []string `json:"preferred_topics"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.UpdatePreferences(args.LearningStyle, args.DifficultyLevel, args.PreferredTopics))
		},
	})

	r.MustRegister(Tool{
		Name:        "record_study_session",
		Description: "Record a completed study session: updates totals, streak and history.",
		InputSchema: objectSchema(map[string]any{
			"subject":          map[string]any{"type": "string", "description": "Subject studied"},
			"duration_minutes": map[string]any{"type": "integer", "description": "Session length in minutes"},
			"topics_covered":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"notes":            map[string]any{"type": "string", "description": "Optional session notes"},
		}, []string{"subject", "duration_minutes"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Subject         string   `json:"subject"`
				DurationMinutes int      `json:"duration_minutes"`
				TopicsCovered   []string `json:"topics_covered"`
				Notes           string   `json:"notes"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.RecordSession(args.Subject, args.DurationMinutes, args.TopicsCovered, args.Notes))
		},
	})

	r.MustRegister(Tool{
		Name:        "add_goal",
		Description: "Add a study goal, optionally with a target date.",
		InputSchema: objectSchema(map[string]any{
			"goal_description": map[string]any{"type": "string", "description": "What the student wants to achieve"},
			"target_date":      map[string]any{"type": "string", "description": "Optional target date, e.g. 2026-06-01"},
		}, []string{"goal_description"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				GoalDescription string `json:"goal_description"`
				TargetDate      string `json:"target_date"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.AddGoal(args.GoalDescription, args.TargetDate))
		},
	})

	r.MustRegister(Tool{
		Name:        "complete_goal",
		Description: "Mark a goal as completed by its numeric id.",
		InputSchema: objectSchema(map[string]any{
			"goal_id": map[string]any{"type": "integer", "description": "Goal id from the profile"},
		}, []string{"goal_id"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				GoalID int `json:"goal_id"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.CompleteGoal(args.GoalID))
		},
	})

	r.MustRegister(Tool{
		Name:        "get_progress_summary",
		Description: "Get a summary of study progress: totals, streak, achievements and goal counts.",
		InputSchema: objectSchema(nil, nil),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return marshalJSON(store.ProgressSummary())
		},
	})

	r.MustRegister(Tool{
		Name:        "add_notes",
		Description: "Replace the free-form notes on the student profile.",
		InputSchema: objectSchema(map[string]any{
			"notes": map[string]any{"type": "string"},
		}, []string{"notes"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Notes string `json:"notes"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.SetNotes(args.Notes))
		},
	})

	r.MustRegister(Tool{
		Name:        "get_recent_sessions",
		Description: "Get the most recent study sessions, newest first.",
		InputSchema: objectSchema(map[string]any{
			"limit": map[string]any{"type": "integer", "description": "Maximum sessions to return (default 10)"},
		}, nil),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Limit int `json:"limit"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.RecentSessions(args.Limit))
		},
	})

	r.MustRegister(Tool{
		Name:        "add_weak_topic",
		Description: "Track a topic the student struggles with, in one of the buckets: struggling, needs_review, improvement_needed.",
		InputSchema: objectSchema(map[string]any{
			"subject":          map[string]any{"type": "string"},
			"topic":            map[string]any{"type": "string"},
			"difficulty_level": map[string]any{"type": "string", "description": "struggling (default), needs_review or improvement_needed"},
			"notes":            map[string]any{"type": "string"},
		}, []string{"subject", "topic"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Subject         string `json:"subject"`
				Topic           string `json:"topic"`
				DifficultyLevel string `json:"difficulty_level"`
				Notes           string `json:"notes"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			if args.DifficultyLevel == "" {
				args.DifficultyLevel = student.BucketStruggling
			}
			return marshalJSON(store.AddWeakTopic(args.Subject, args.Topic, args.DifficultyLevel, args.Notes))
		},
	})

	r.MustRegister(Tool{
		Name:        "update_weak_topic_review",
		Description: "Record that a weak topic was reviewed, with optional improvement notes.",
		InputSchema: objectSchema(map[string]any{
			"subject":           map[string]any{"type": "string"},
			"topic":             map[string]any{"type": "string"},
			"improvement_notes": map[string]any{"type": "string"},
		}, []string{"subject", "topic"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Subject          string `json:"subject"`
				Topic            string `json:"topic"`
				ImprovementNotes string `json:"improvement_notes"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.ReviewWeakTopic(args.Subject, args.Topic, args.ImprovementNotes))
		},
	})

	r.MustRegister(Tool{
		Name:        "remove_weak_topic",
		Description: "Remove a weak topic once it is mastered or no longer relevant.",
		InputSchema: objectSchema(map[string]any{
			"subject": map[string]any{"type": "string"},
			"topic":   map[string]any{"type": "string"},
			"reason":  map[string]any{"type": "string", "description": "Why it is being removed (default: mastered)"},
		}, []string{"subject", "topic"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Subject string `json:"subject"`
				Topic   string `json:"topic"`
				Reason  string `json:"reason"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(store.RemoveWeakTopic(args.Subject, args.Topic, args.Reason))
		},
	})

	r.MustRegister(Tool{
		Name:        "get_weak_topics_summary",
		Description: "Get weak topics grouped by subject, with total counts and most-reviewed topics.",
		InputSchema: objectSchema(nil, nil),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return marshalJSON(store.WeakTopicsSummary())
		},
	})
}

// objectSchema builds a JSON Schema object definition.
func objectSchema(props map[string]any, required []string) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func marshalJSON(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize tool result: %w", err)
	}
	return string(out), nil
}
