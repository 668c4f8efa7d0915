package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats"
)

func main() {
	playerID := flag.String("player", "", "only list combats owned by this player")
	flag.Parse()

	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	if *playerID != "" {
		repo := combats.NewRedisRepository(&combats.RedisRepoConfig{Client: client})
		snapshots, err := repo.ListByPlayer(ctx, *playerID)
		if err != nil {
			log.Fatalf("Failed to list combats: %v", err)
		}

		fmt.Printf("Found %d combats for %s:\n", len(snapshots), *playerID)
		for _, s := range snapshots {
			living := 0
			for _, e := range s.Enemies {
				if !e.IsDefeated() {
					living++
				}
			}
			fmt.Printf("  %s: turn %d, player %d/%d hp, %d/%d enemies standing, updated %s\n",
				s.ID, s.Turn, s.Player.Health, s.Player.MaxHealth, living, len(s.Enemies), s.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return
	}

	// Find all combat keys
	var cursor uint64
	var keys []string
	for {
		batch, next, err := client.Scan(ctx, cursor, "combat:*", 100).Result()
		if err != nil {
			log.Fatalf("Failed to scan combat keys: %v", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	fmt.Printf("Found %d combats:\n", len(keys))
	for _, key := range keys {
		ttl, ttlErr := client.TTL(ctx, key).Result()
		if ttlErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, ttlErr)
			continue
		}
		fmt.Printf("  %s: expires in %s\n", key, ttl)
	}
}
