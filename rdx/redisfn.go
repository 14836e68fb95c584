package rdx

import (
	"fmt"
	"log"
	"os"
	"time"

	"eventify/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v", addr, err)
	}
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

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// --- Catalog owner index ---
//
// Bookings do not carry the owning organizer; ownership is reachable only via
// the booking's catalog item. The index below caches catalog-item id →
// organizer id so the two-hop resolution can skip a catalog fetch when warm.
// Mongo remains the source of truth; a cache miss falls back to the catalog
// store.

func ownerKey(catalogID string) string {
	return fmt.Sprintf("owner:%s", catalogID)
}

func SetCatalogOwner(catalogID, organizerID string) error {
	return Conn.Set(globals.Ctx, ownerKey(catalogID), organizerID, 0).Err()
}

func GetCatalogOwner(catalogID string) (string, error) {
	return Conn.Get(globals.Ctx, ownerKey(catalogID)).Result()
}

func DelCatalogOwner(catalogID string) error {
	return Conn.Del(globals.Ctx, ownerKey(catalogID)).Err()
}
