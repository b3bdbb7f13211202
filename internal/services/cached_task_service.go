package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"task-tracker.com/task-tracker/internal/cache"
	model "task-tracker.com/task-tracker/internal/models"
)

const DefaultCacheTTL = 10 * time.Minute

// cachedTaskService reads through the cache and drops affected entries after
// every successful mutation. The store stays authoritative: cache failures
// are logged and never fail the request.
type cachedTaskService struct {
	next   TaskService
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group

	// generation moves on every invalidation. A fill whose read began under
	// an older generation is dropped.
	generation atomic.Uint64
}

func WithCache(next TaskService, c cache.Cache, ttl time.Duration, logger *slog.Logger) TaskService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &cachedTaskService{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("component", "task_cache"),
	}
}

func (s *cachedTaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	task, err := s.next.CreateTask(ctx, in)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.AllTasksKey)
	return task, nil
}

func (s *cachedTaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	key := cache.TaskKey(id)

	var cached model.Task
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	v, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		task, err := s.next.GetTask(ctx, id)
		if err != nil || task == nil {
			return nil, err
		}
		return task, nil
	})
	if err != nil {
		return nil, err
	}

	task, _ := v.(*model.Task)
	if task == nil {
		return nil, nil
	}
	out := *task
	return &out, nil
}

func (s *cachedTaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	var cached []model.Task
	if s.lookup(ctx, cache.AllTasksKey, &cached) {
		return cached, nil
	}

	v, err := s.shared(ctx, cache.AllTasksKey, func(ctx context.Context) (any, error) {
		return s.next.ListTasks(ctx)
	})
	if err != nil {
		return nil, err
	}

	tasks, _ := v.([]model.Task)
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

func (s *cachedTaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*model.Task, error) {
	task, err := s.next.UpdateTask(ctx, in)
	if err != nil || task == nil {
		return task, err
	}

	s.invalidate(ctx, cache.TaskKey(in.ID), cache.AllTasksKey)
	return task, nil
}

func (s *cachedTaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.next.DeleteTask(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	s.invalidate(ctx, cache.TaskKey(id), cache.AllTasksKey)
	return true, nil
}

// lookup decodes the entry at key into dest and reports a usable hit.
func (s *cachedTaskService) lookup(ctx context.Context, key string, dest any) bool {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return false
	}
	if !found {
		s.logger.DebugContext(ctx, "cache miss", "key", key)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
		s.invalidate(ctx, key)
		return false
	}

	s.logger.DebugContext(ctx, "cache hit", "key", key)
	return true
}

// shared runs load once for all concurrent callers of key and caches a
// non-nil result. The load does not inherit the caller's cancellation; each
// caller stops waiting only when its own context ends.
func (s *cachedTaskService) shared(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		gen := s.generation.Load()

		v, err := load(loadCtx)
		if err != nil || v == nil {
			return v, err
		}
		s.store(loadCtx, key, v, gen)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// store caches value unless an invalidation happened since gen was taken.
// The second check removes an entry written concurrently with a mutation.
func (s *cachedTaskService) store(ctx context.Context, key string, value any, gen uint64) {
	if s.generation.Load() != gen {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
		return
	}

	if s.generation.Load() != gen {
		s.logger.DebugContext(ctx, "dropping stale cache fill", "key", key)
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "cache invalidation failed", "keys", []string{key}, "error", err)
		}
	}
}

func (s *cachedTaskService) invalidate(ctx context.Context, keys ...string) {
	s.generation.Add(1)
	for _, k := range keys {
		s.group.Forget(k)
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", "keys", keys, "error", err)
	}
}
