package db

import (
	"fmt"
	"log"

	"github.com/dgraph-io/ristretto"
)

// Category lists are read on almost every page and change rarely, so they get
// a small read cache keyed per user.
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func CategoryCacheKey(userID int64) string {
	return fmt.Sprintf("categories:%d", userID)
}

func SetCategoryCache(cacheKey string, value interface{}) {
	Cache.Set(cacheKey, value, 1)
}

func DelCategoryCache(cacheKey string) {
	Cache.Del(cacheKey)
}
