// Command migrate applies the database schema explicitly. Production
// deployments run this instead of relying on boot-time automigration.
package main

import (
	"log"

	"github.com/maxwellkiplagat/Movie-clubb/internal/config"
	"github.com/maxwellkiplagat/Movie-clubb/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema migration completed")
}
