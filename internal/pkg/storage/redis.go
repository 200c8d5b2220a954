package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

var _ AnalysisCache = (*RedisCache)(nil)

// RedisCache keeps the latest analysis per match with a TTL so the HTTP
// API always serves fresh data without touching the odds quota.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// StoreAnalysis overwrites the cached analysis for the match.
func (r *RedisCache) StoreAnalysis(ctx context.Context, analysis models.MarketAnalysis) error {
	key := "analysis:" + analysis.MatchID.Key()

	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// LatestAnalyses returns every cached analysis. Entries that expired
// between Keys and Get, or that fail to decode, are skipped.
func (r *RedisCache) LatestAnalyses(ctx context.Context) ([]models.MarketAnalysis, error) {
	keys, err := r.client.Keys(ctx, "analysis:*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis keys: %w", err)
	}

	var analyses []models.MarketAnalysis
	for _, key := range keys {
		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			continue
		}

		var analysis models.MarketAnalysis
		if err := json.Unmarshal([]byte(data), &analysis); err != nil {
			continue
		}
		analyses = append(analyses, analysis)
	}

	return analyses, nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
