package cache

import (
	"context"
	"strconv"
	"time"
)

// AllTasksKey holds the serialized list of every task.
const AllTasksKey = "all_tasks"

// Cache is a byte-oriented key/value store with per-entry TTL.
// Get reports a missing or empty entry as found == false.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}

// TaskKey returns the per-task key, task_<id>.
func TaskKey(id int64) string {
	return "task_" + strconv.FormatInt(id, 10)
}
