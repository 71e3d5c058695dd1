package main

import (
	"flag"
	"log"

	"luxestore-be/internal/config"
	"luxestore-be/internal/db"
	"luxestore-be/internal/migrate"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	switch *mode {
	case "up":
		if err := migrate.Apply(database); err != nil {
			log.Fatal(err)
		}
		log.Println("migrations applied")
	case "down":
		if err := migrate.Rollback(database); err != nil {
			log.Fatal(err)
		}
		log.Println("rolled back one migration")
	default:
		log.Fatalf("unknown mode: %s (use 'up' or 'down')", *mode)
	}
}
