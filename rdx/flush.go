package rdx

import (
	"log"
	"strconv"
	"strings"
	"time"

	"lagoon/db"
	"lagoon/globals"

	"go.mongodb.org/mongo-driver/bson"
)

// FlushTripCounters periodically folds the Redis view/like counters into the
// trip documents so the counts survive a Redis restart. Counters accumulate
// as deltas and are reset after a successful flush.
func FlushTripCounters() {
	ticker := time.NewTicker(30 * time.Second)
	for range ticker.C {
		flushCounter("views:trip:*", "views_count")
		flushCounter("likes:trip:*", "likes_count")
	}
}

func flushCounter(pattern, field string) {
	keys, err := Conn.Keys(globals.Ctx, pattern).Result()
	if err != nil {
		log.Println("Redis scan error:", err)
		return
	}

	for _, key := range keys {
		parts := strings.Split(key, ":")
		if len(parts) != 3 {
			log.Println("Invalid Redis counter key format:", key)
			continue
		}
		shortID := parts[2]

		countStr, err := Conn.Get(globals.Ctx, key).Result()
		if err != nil {
			log.Println("Redis Get error for key", key, ":", err)
			continue
		}

		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			log.Println("Failed to parse counter:", countStr)
			continue
		}
		if count == 0 {
			Conn.Del(globals.Ctx, key)
			continue
		}

		filter := bson.M{"short_id": shortID}
		update := bson.M{"$inc": bson.M{field: count}}

		if _, err := db.TripsCollection.UpdateOne(globals.Ctx, filter, update); err != nil {
			log.Println("MongoDB counter update error for", shortID, ":", err)
			continue
		}

		if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
			log.Println("Failed to delete Redis key:", key)
		}
	}
}
