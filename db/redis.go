// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// CacheAsset stores an asset under its id with the default TTL. The
// cache is best-effort: callers treat failures as a miss.
func CacheAsset(ctx context.Context, asset *model.Asset) error {
	if RedisClient == nil {
		return nil
	}
	assetJSON, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("failed to marshal asset: %w", err)
	}

	key := fmt.Sprintf("asset:%d", asset.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, assetJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache asset: %w", err)
	}

	logger.Debug("Asset cached successfully", zap.Int64("assetID", asset.ID))
	return nil
}

func GetCachedAsset(ctx context.Context, assetID int64) (*model.Asset, error) {
	if RedisClient == nil {
		return nil, nil
	}
	key := fmt.Sprintf("asset:%d", assetID)
	assetJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Asset not found in cache", zap.Int64("assetID", assetID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get asset from cache: %w", err)
	}

	var asset model.Asset
	err = json.Unmarshal([]byte(assetJSON), &asset)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset: %w", err)
	}

	logger.Debug("Asset retrieved from cache", zap.Int64("assetID", assetID))
	return &asset, nil
}

func DeleteCachedAsset(ctx context.Context, assetID int64) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("asset:%d", assetID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete asset from cache: %w", err)
	}
	logger.Debug("Asset deleted from cache", zap.Int64("assetID", assetID))
	return nil
}

// CacheService stores a taxonomy service node.
func CacheService(ctx context.Context, service *model.Service) error {
	if RedisClient == nil {
		return nil
	}
	serviceJSON, err := json.Marshal(service)
	if err != nil {
		return fmt.Errorf("failed to marshal service: %w", err)
	}

	key := fmt.Sprintf("service:%d", service.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, serviceJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache service: %w", err)
	}

	logger.Debug("Service cached successfully", zap.Int64("serviceID", service.ID))
	return nil
}

func GetCachedService(ctx context.Context, serviceID int64) (*model.Service, error) {
	if RedisClient == nil {
		return nil, nil
	}
	key := fmt.Sprintf("service:%d", serviceID)
	serviceJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Service not found in cache", zap.Int64("serviceID", serviceID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get service from cache: %w", err)
	}

	var service model.Service
	err = json.Unmarshal([]byte(serviceJSON), &service)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal service: %w", err)
	}

	logger.Debug("Service retrieved from cache", zap.Int64("serviceID", serviceID))
	return &service, nil
}

func DeleteCachedService(ctx context.Context, serviceID int64) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("service:%d", serviceID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete service from cache: %w", err)
	}
	logger.Debug("Service deleted from cache", zap.Int64("serviceID", serviceID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
