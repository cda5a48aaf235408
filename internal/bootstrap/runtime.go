// Package bootstrap wires up runtime dependencies for the server process.
package bootstrap

import (
	"fmt"

	"github.com/maxwellkiplagat/Movie-clubb/internal/cache"
	"github.com/maxwellkiplagat/Movie-clubb/internal/config"
	"github.com/maxwellkiplagat/Movie-clubb/internal/database"
	"github.com/maxwellkiplagat/Movie-clubb/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{
			NumUsers:  25,
			NumMovies: 40,
			NumClubs:  8,
			NumPosts:  60,
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
