package monitoring

import (
	"fmt"
	"sync"
	"time"
)

// A ProgressBar tracks how many runs of a sweep have started and finished.
// It is safe for concurrent use.
type ProgressBar struct {
	sync.Mutex
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
}

// NewProgressBar creates a progress bar that starts now.
func NewProgressBar(id, name string, total uint64) *ProgressBar {
	return &ProgressBar{
		ID:        id,
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}
}

// IncrementInProgress marks runs as started.
func (b *ProgressBar) IncrementInProgress(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress += amount
}

// MoveInProgressToFinished marks started runs as finished.
func (b *ProgressBar) MoveInProgressToFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress -= amount
	b.Finished += amount
}

// Fraction returns the finished share of the total.
func (b *ProgressBar) Fraction() float64 {
	b.Lock()
	defer b.Unlock()

	return b.fraction()
}

func (b *ProgressBar) fraction() float64 {
	if b.Total == 0 {
		return 0
	}

	return float64(b.Finished) / float64(b.Total)
}

// String renders the bar in a single line.
func (b *ProgressBar) String() string {
	b.Lock()
	defer b.Unlock()

	return fmt.Sprintf("%s: %d/%d finished (%.0f%%), %d in progress, %s elapsed",
		b.Name, b.Finished, b.Total, 100*b.fraction(), b.InProgress,
		time.Since(b.StartTime).Round(time.Millisecond))
}
