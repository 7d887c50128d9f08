package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	viewsKey      = "animal:views"  // sorted set: member=animal id, score=views
	statKeyPrefix = "animal:stats:" // hash per animal: name + last_viewed
)

// RedisStore keeps the authoritative view count in a sorted set so the
// dashboard ranking is a single ZREVRANGE, with a per-animal hash for
// the denormalized name and last-viewed timestamp.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: rdb}, nil
}

func (s *RedisStore) IncrementView(ctx context.Context, animalID uint, animalName string) error {
	member := strconv.FormatUint(uint64(animalID), 10)

	pipe := s.client.TxPipeline()
	pipe.ZIncrBy(ctx, viewsKey, 1, member)
	pipe.HSet(ctx, statKeyPrefix+member, map[string]any{
		"animal_name": animalName,
		"last_viewed": time.Now().Format(time.RFC3339Nano),
	})
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Top(ctx context.Context, n int) ([]AnimalStat, error) {
	ranked, err := s.client.ZRevRangeWithScores(ctx, viewsKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]AnimalStat, 0, len(ranked))
	for _, z := range ranked {
		member, _ := z.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		stat := AnimalStat{AnimalID: uint(id), Views: int64(z.Score)}

		fields, err := s.client.HGetAll(ctx, statKeyPrefix+member).Result()
		if err == nil {
			stat.AnimalName = fields["animal_name"]
			if ts, err := time.Parse(time.RFC3339Nano, fields["last_viewed"]); err == nil {
				stat.LastViewed = ts
			}
		}
		out = append(out, stat)
	}
	return out, nil
}

func (s *RedisStore) TotalViews(ctx context.Context) (int64, error) {
	all, err := s.client.ZRangeWithScores(ctx, viewsKey, 0, -1).Result()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, z := range all {
		total += int64(z.Score)
	}
	return total, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
