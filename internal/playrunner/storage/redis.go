package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/config"
)

// maxTxRetries bounds optimistic-lock retries when a watched key changes
// between read and write.
const maxTxRetries = 16

// redisBackend stores each job as a JSON document under <prefix>:job:<id>
// and keeps a sorted set <prefix>:jobs ordered by creation time.
type redisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects to Redis and verifies the server answers.
func NewRedisBackend(ctx context.Context, cfg config.RedisConfig) (Backend, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	backend := NewRedisBackendWithClient(client, cfg.KeyPrefix)

	if err := backend.HealthCheck(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return backend, nil
}

// NewRedisBackendWithClient wraps an existing client.
func NewRedisBackendWithClient(client *redis.Client, prefix string) Backend {
	if prefix == "" {
		prefix = "playrunner"
	}
	return &redisBackend{client: client, prefix: prefix}
}

func (r *redisBackend) jobKey(jobID string) string {
	return r.prefix + ":job:" + jobID
}

func (r *redisBackend) indexKey() string {
	return r.prefix + ":jobs"
}

func (r *redisBackend) Create(ctx context.Context, job *domain.Job) error {
	stored := stamp(job)
	data, err := encodeJob(stored)
	if err != nil {
		return &StorageError{Code: "MARSHAL_ERROR", Message: "failed to marshal job", Err: err}
	}

	ok, err := r.client.SetNX(ctx, r.jobKey(stored.ID), data, 0).Result()
	if err != nil {
		return &StorageError{Code: "REDIS_ERROR", Message: "failed to create job", Err: err}
	}
	if !ok {
		return ErrJobAlreadyExists
	}

	err = r.client.ZAdd(ctx, r.indexKey(), redis.Z{
		Score:  float64(stored.CreatedAt.UnixNano()),
		Member: stored.ID,
	}).Err()
	if err != nil {
		return &StorageError{Code: "REDIS_ERROR", Message: "failed to index job", Err: err}
	}
	return nil
}

func (r *redisBackend) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	data, err := r.client.Get(ctx, r.jobKey(jobID)).Bytes()
	if err == redis.Nil {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, &StorageError{Code: "REDIS_ERROR", Message: "failed to get job", Err: err}
	}

	job, err := decodeJob(data)
	if err != nil {
		return nil, &StorageError{Code: "UNMARSHAL_ERROR", Message: "failed to unmarshal job", Err: err}
	}
	return job, nil
}

func (r *redisBackend) Update(ctx context.Context, jobID string, update domain.JobUpdate) error {
	_, err := r.mutate(ctx, jobID, func(job *domain.Job) error {
		if err := checkTransition(jobID, job.Status, update); err != nil {
			return err
		}
		update.Apply(job)
		return nil
	})
	return err
}

func (r *redisBackend) CompareAndSwap(ctx context.Context, jobID string, expected []domain.JobStatus, update domain.JobUpdate) (*domain.Job, error) {
	return r.mutate(ctx, jobID, func(job *domain.Job) error {
		if !statusIn(job.Status, expected) {
			return transitionError(jobID, job.Status, expected)
		}
		if err := checkTransition(jobID, job.Status, update); err != nil {
			return err
		}
		update.Apply(job)
		return nil
	})
}

// mutate runs fn on the stored job inside a WATCH transaction and writes the
// result back. The transaction is retried when another writer got there first.
func (r *redisBackend) mutate(ctx context.Context, jobID string, fn func(job *domain.Job) error) (*domain.Job, error) {
	key := r.jobKey(jobID)
	var result *domain.Job

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return ErrJobNotFound
		}
		if err != nil {
			return err
		}

		job, err := decodeJob(data)
		if err != nil {
			return &StorageError{Code: "UNMARSHAL_ERROR", Message: "failed to unmarshal job", Err: err}
		}
		if err := fn(job); err != nil {
			return err
		}

		out, err := encodeJob(job)
		if err != nil {
			return &StorageError{Code: "MARSHAL_ERROR", Message: "failed to marshal job", Err: err}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, redis.KeepTTL)
			return nil
		})
		if err == nil {
			result = job
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var se *StorageError
		if errors.Is(err, ErrJobNotFound) || errors.Is(err, ErrInvalidTransition) || errors.As(err, &se) {
			return nil, err
		}
		return nil, &StorageError{Code: "REDIS_ERROR", Message: "failed to update job", Err: err}
	}
	return nil, &StorageError{Code: "CONFLICT", Message: "too many concurrent updates", Err: redis.TxFailedErr}
}

func (r *redisBackend) Delete(ctx context.Context, jobID string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.jobKey(jobID))
		pipe.ZRem(ctx, r.indexKey(), jobID)
		return nil
	})
	if err != nil {
		return &StorageError{Code: "REDIS_ERROR", Message: "failed to delete job", Err: err}
	}
	if del.Val() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *redisBackend) List(ctx context.Context, filter *Filter) ([]*domain.Job, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, &StorageError{Code: "REDIS_ERROR", Message: "failed to list jobs", Err: err}
	}
	if len(ids) == 0 {
		return []*domain.Job{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.jobKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, &StorageError{Code: "REDIS_ERROR", Message: "failed to load jobs", Err: err}
	}

	jobs := make([]*domain.Job, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// deleted between ZREVRANGE and MGET
			continue
		}
		job, err := decodeJob([]byte(s))
		if err != nil {
			continue
		}
		if filter.Matches(job) {
			jobs = append(jobs, job)
		}
	}
	sortNewestFirst(jobs)

	if filter != nil && filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

func (r *redisBackend) Close() error {
	return r.client.Close()
}

func (r *redisBackend) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return &StorageError{Code: "UNAVAILABLE", Message: "redis not reachable", Err: err}
	}
	return nil
}
