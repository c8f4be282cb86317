//go:build ignore

// Reseeds a SQLite database file with the sample restaurants and pizzas.
//
//	go run scripts/seed.go -db app.db
package main

import (
	"flag"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
)

func main() {
	path := flag.String("db", "app.db", "SQLite database file")
	keep := flag.Bool("keep", false, "Keep existing rows and only seed an empty database")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *keep {
		if err := database.SeedIfEmpty(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		return
	}

	log.Println("Clearing existing data")
	if err := database.Reset(db); err != nil {
		log.Fatal("Failed to clear database:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	log.Printf("Seeded %s", *path)
}
