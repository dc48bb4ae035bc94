package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = time.Hour

	ProductsAllKey   = "products:all"
	CategoriesAllKey = "categories:all"
)

// GetJSON lit une clé Redis et la désérialise dans dest. Retourne false en
// cas de miss (ou de valeur illisible : on retombe sur la base).
func GetJSON(ctx context.Context, key string, dest any) bool {
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetJSON sérialise v et l'écrit avec TTL. Les erreurs sont ignorées : le
// cache est un accélérateur, pas une source de vérité.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if data, err := json.Marshal(v); err == nil {
		database.Redis.Set(ctx, key, data, ttl)
	}
}

// Invalidate supprime des clés après une écriture catalogue
func Invalidate(ctx context.Context, keys ...string) {
	database.Redis.Del(ctx, keys...)
}
