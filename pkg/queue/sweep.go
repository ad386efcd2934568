package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
)

// stuckTaskError is the error message written to tasks failed by the sweep.
const stuckTaskError = "task timeout"

// SweepStuckTasks fails every task that has sat in processing with no
// mutation for longer than timeout. This is the sole recovery path when an
// executor crashes mid-task or a provider hangs past all retries; live
// workers keep updated_at fresh, so only abandoned rows match.
func SweepStuckTasks(ctx context.Context, client *ent.Client, timeout time.Duration) (int, error) {
	cutoff := time.Now().Add(-timeout)

	n, err := client.Task.Update().
		Where(
			task.StatusEQ(task.StatusProcessing),
			task.UpdatedAtLT(cutoff),
		).
		SetStatus(task.StatusFailed).
		SetErrorMessage(stuckTaskError).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stuck tasks: %w", err)
	}
	return n, nil
}
