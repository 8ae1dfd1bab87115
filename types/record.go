package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stable-rl/simzoo/util"
)

// TraceRecorder persists episode traces as they are produced
type TraceRecorder interface {
	Record(experiment string, run int, trace *Trace) error
}

// FileTraceRecorder appends traces to per-experiment jsonl files
type FileTraceRecorder struct {
	dir string
}

var _ TraceRecorder = &FileTraceRecorder{}

func NewFileTraceRecorder(dir string) (*FileTraceRecorder, error) {
	tracesDir := path.Join(dir, "traces")
	if _, err := os.Stat(tracesDir); err != nil {
		if err := os.MkdirAll(tracesDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create traces folder: %w", err)
		}
	}
	return &FileTraceRecorder{dir: tracesDir}, nil
}

func (f *FileTraceRecorder) Record(experiment string, run int, trace *Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	tracesFile := path.Join(f.dir, experiment+"_"+strconv.Itoa(run)+".jsonl")
	return util.AppendToFile(tracesFile, string(bs))
}

// RedisTraceRecorder pushes traces to per-experiment redis lists
// so runs on different machines can share one store
type RedisTraceRecorder struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

var _ TraceRecorder = &RedisTraceRecorder{}

func NewRedisTraceRecorder(addr, prefix string) *RedisTraceRecorder {
	return &RedisTraceRecorder{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		prefix:  prefix,
		timeout: 5 * time.Second,
	}
}

func (r *RedisTraceRecorder) Record(experiment string, run int, trace *Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	key := r.prefix + ":" + experiment + ":" + strconv.Itoa(run)
	return r.client.RPush(ctx, key, string(bs)).Err()
}

func (r *RedisTraceRecorder) Close() error {
	return r.client.Close()
}
