package maintenance

import (
	"context"
	"time"
)

// Optimizer performs non-destructive database housekeeping.
type Optimizer interface {
	Optimize(ctx context.Context) error
}

// Schedule yields the next run time after a given instant. A zero time
// means there are no further runs.
type Schedule interface {
	Next(after time.Time) time.Time
}
