// Command main runs the database seeder for the Movie Club backend.
package main

import (
	"flag"
	"log"

	"github.com/maxwellkiplagat/Movie-clubb/internal/config"
	"github.com/maxwellkiplagat/Movie-clubb/internal/database"
	"github.com/maxwellkiplagat/Movie-clubb/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numMovies := flag.Int("movies", 80, "Number of catalog movies to create")
	numClubs := flag.Int("clubs", 12, "Number of clubs to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d movies, %d clubs, %d posts, clean=%v\n",
		*numUsers, *numMovies, *numClubs, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumMovies:   *numMovies,
		NumClubs:    *numClubs,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All seeded users have the password: password123")
}
