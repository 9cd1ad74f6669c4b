package history

import "time"

// GroupStatus records the outcome of one merge group.
type GroupStatus string

const (
	StatusMerged GroupStatus = "merged"
	StatusFailed GroupStatus = "failed"
)

// Run is one invocation of the merge pipeline against a directory.
type Run struct {
	ID         string
	Path       string
	StartedAt  time.Time
	FinishedAt time.Time
	GroupCount int
}

// GroupRecord is the stored outcome of one merge group within a run.
type GroupRecord struct {
	RunID        string
	GroupKey     string
	ClipCount    int
	Command      string
	Output       string
	Status       GroupStatus
	ErrorMessage string
	CreatedAt    time.Time
}
