package config

import (
	"fmt"

	"github.com/redis/rueidis"
)

func NewRedisClient(cfg Config) (rueidis.Client, error) {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{cfg.RedisAddr()},
			Password:    cfg.RedisPassword,
			SelectDB:    cfg.RedisDB,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	return redisClient, nil
}
