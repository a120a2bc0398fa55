package rdx

import (
	"fmt"
	"log"
	"os"
	"time"

	"lagoon/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// IncrTripViews bumps the in-Redis view counter for a trip. The caller does
// not wait on the flush; a lost increment is tolerated.
func IncrTripViews(shortID string) {
	key := fmt.Sprintf("views:trip:%s", shortID)
	if err := Conn.Incr(globals.Ctx, key).Err(); err != nil {
		log.Println("Redis view increment failed for", shortID, ":", err)
	}
}

// IncrTripLikes bumps the like counter; negative delta for an unlike.
func IncrTripLikes(shortID string, delta int64) {
	key := fmt.Sprintf("likes:trip:%s", shortID)
	if err := Conn.IncrBy(globals.Ctx, key, delta).Err(); err != nil {
		log.Println("Redis like increment failed for", shortID, ":", err)
	}
}
