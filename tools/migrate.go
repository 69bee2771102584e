package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"bps-backoffice/database"
	"bps-backoffice/database/seeders"
)

func main() {
	seed := flag.Bool("seed", false, "seed station reference data after migrating")
	flag.Parse()

	fmt.Println("Running database migrations...")
	db, err := database.InitDB()
	if err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Migration completed successfully!")

	if *seed {
		fmt.Println("Seeding station reference data...")
		seeders.SeedStations(db)
	}
}
