package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dietplanner/backend/internal/config"
	"github.com/dietplanner/backend/internal/infrastructure/database"
	"github.com/dietplanner/backend/pkg/constants"
)

// wipedb drops all bot tables. Intended for local development resets.
func main() {
	yes := flag.Bool("yes", false, "actually drop the tables instead of listing them")
	flag.Parse()

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.GetInstance(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	tables := []string{
		constants.TableFoodEntries,
		constants.TableWaterEntries,
		constants.TableWeightRecords,
		constants.TableMealPlan,
		constants.TableCartItems,
		constants.TableRecipes,
		constants.TableReminders,
		constants.TableArticles,
		constants.TableNutritionists,
		constants.TableAdmins,
		constants.TableUsers,
	}

	if !*yes {
		fmt.Println("Would drop the following tables (re-run with -yes to confirm):")
		for _, table := range tables {
			fmt.Printf("  %s\n", table)
		}
		return
	}

	for _, table := range tables {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			log.Fatalf("failed to drop %s: %v", table, err)
		}
		log.Printf("dropped %s", table)
	}
	log.Println("done")
}
