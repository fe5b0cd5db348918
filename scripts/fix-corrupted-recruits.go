// Command fix-corrupted-recruits finds stored recruits that no longer decode
// or no longer fit the stat set and optionally deletes them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/dreamshade/recruit-api/internal/config"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// the stat set comes from the same catalog the server loads
	catalog, err := config.LoadCatalog(os.Getenv("RECRUIT_PROFILES"))
	if err != nil {
		log.Fatal("Failed to load profiles:", err)
	}
	profile, err := catalog.Lookup(config.DefaultProfile)
	if err != nil {
		log.Fatal("Failed to resolve default profile:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted recruit data...")

	report, err := recruitrepo.ScanRedis(ctx, client, profile.Generation.Stats)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", report.Checked, len(report.Corrupt))

	if len(report.Corrupt) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	keys := make([]string, 0, len(report.Corrupt))
	fmt.Println("\nCorrupted keys:")
	for _, c := range report.Corrupt {
		fmt.Printf("  - %s (%s)\n", c.Key, c.Reason)
		keys = append(keys, c.Key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	if err := recruitrepo.PurgeRedis(ctx, client, keys); err != nil {
		log.Fatal("Cleanup failed:", err)
	}
	fmt.Println("\nCleanup complete!")
}
