package middleware

import (
	"context"
	"time"

	authmw "review_project/internal/utils/middleware"
	"review_project/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	DefaultReplayTTL  = 24 * time.Hour
)

type Cache interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisCache{client: rdb}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetBytes(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	} else if err != nil {
		logger.Logger.Error("Redis get error", zap.Error(err))
		return nil, false
	}
	return val, true
}

func (c *RedisCache) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) {
	err := c.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		logger.Logger.Error("Redis set error", zap.Error(err))
	}
}

// IdempotencyInterceptor replays the stored response of a successful call when the
// same caller repeats a method with the same Idempotency-Key. Keys are scoped by method
// and caller email. Calls without an identity or a key are never cached.
func IdempotencyInterceptor(cache Cache, ttl time.Duration) grpc.UnaryServerInterceptor {
	if ttl <= 0 {
		ttl = DefaultReplayTTL
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}
		keys := md.Get(IdempotencyHeader)
		if len(keys) == 0 || keys[0] == "" {
			return handler(ctx, req)
		}
		identity, ok := authmw.IdentityFromContext(ctx)
		if !ok {
			return handler(ctx, req)
		}
		key := "idempotency:" + info.FullMethod + ":" + identity.Email + ":" + keys[0]

		logger.Logger.Debug("Get idempotency key", zap.String("key", key))

		if cached, ok := cache.GetBytes(ctx, key); ok {
			var anyResp anypb.Any
			if err := proto.Unmarshal(cached, &anyResp); err != nil {
				logger.Logger.Error("Failed to unmarshal Any response", zap.Error(err))
				return handler(ctx, req)
			}

			resp, err := anyResp.UnmarshalNew()
			if err != nil {
				logger.Logger.Error("Failed to unpack Any response", zap.Error(err))
				return handler(ctx, req)
			}

			logger.Logger.Info("Returning cached response", zap.String("key", key))
			return resp, nil
		}

		res, err := handler(ctx, req)
		if err != nil {
			return res, err
		}

		msg, ok := res.(proto.Message)
		if !ok {
			return res, nil
		}
		anyRes, err := anypb.New(msg)
		if err != nil {
			logger.Logger.Error("Failed to pack response to Any", zap.Error(err))
			return res, nil
		}
		data, err := proto.Marshal(anyRes)
		if err != nil {
			logger.Logger.Error("Failed to marshal Any response", zap.Error(err))
			return res, nil
		}

		cache.SetBytes(ctx, key, data, ttl)
		logger.Logger.Info("Successfully set idempotency data by key", zap.String("key", key))
		return res, nil
	}
}
