package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"skyhunt-service/internal/infrastructure/config"
	"skyhunt-service/internal/infrastructure/persistence"
	"skyhunt-service/internal/interface/repository"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"
)

// Interactive helper to register a hunt from the terminal
func main() {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := gormDB.AutoMigrate(&repository.Watchlist{}); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	registry := usecase.NewHuntRegistry(repository.NewGormHuntRepository(gormDB), log)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("--- New trip setup ---")
	origin := prompt(reader, "Origin code (e.g. BLR): ")
	destination := prompt(reader, "Destination code (e.g. DEL): ")
	travelDate := prompt(reader, "Travel date (YYYY-MM-DD): ")

	price, err := strconv.ParseFloat(prompt(reader, "Budget: "), 64)
	if err != nil {
		fmt.Println("Price must be a number.")
		os.Exit(1)
	}

	flexDays := 0
	if answer := strings.ToLower(prompt(reader, "Flexible dates? (yes/no): ")); answer == "yes" || answer == "y" {
		flexDays, err = strconv.Atoi(prompt(reader, "How many days +/- can you shift? "))
		if err != nil {
			flexDays = 3
			fmt.Println("(Defaulting to +/- 3 days)")
		}
	}

	whatsapp := prompt(reader, "WhatsApp number (+91...): ")

	hunt, err := registry.Register(context.Background(), usecase.RegisterHuntInput{
		Origin:       origin,
		Destination:  destination,
		TravelDate:   travelDate,
		FlexDays:     flexDays,
		TargetPrice:  price,
		NotifyTarget: whatsapp,
	})
	if err != nil {
		fmt.Printf("Could not register hunt: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Hunt %d is live: %s on %s\n", hunt.ID, hunt.Route(), hunt.TravelDate.Format("2006-01-02"))
	fmt.Printf("Strategy: %s. Alerting %s when price < %.0f\n", hunt.ModeLabel(), hunt.UserWhatsapp, hunt.TargetPrice)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
