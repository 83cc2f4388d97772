package student

// Result statuses. Domain failures (goal not found, topic not found) are
// reported through the status field rather than as errors so callers — and
// the agent relaying them — always get a usable message.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInfo    = "info"
)

// Result is the outcome of a store operation.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func success(msg string) Result { return Result{Status: StatusSuccess, Message: msg} }
func errorf(msg string) Result  { return Result{Status: StatusError, Message: msg} }
func info(msg string) Result    { return Result{Status: StatusInfo, Message: msg} }

// SessionResult extends Result with the counters returned by RecordSession.
type SessionResult struct {
	Result
	TotalSessions int `json:"total_sessions"`
	StudyStreak   int `json:"study_streak"`
}
