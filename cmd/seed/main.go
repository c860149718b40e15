// Command seed populates the database with sample users and gadgets:
// one user per role and five gadgets with generated codenames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/imfops/gadget-api/internal/generators"
	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Println("Sample data has been seeded!")
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "gadgets"),
	)

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return err
	}
	defer logger.Log.Sync()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	users := repositories.NewUserWriteRepository(db)
	gadgets := repositories.NewGadgetWriteRepository(db)
	gen := generators.New()

	seedUsers := []struct {
		username string
		password string
		role     string
	}{
		{"User-admin1", "mission1", models.RoleAdmin},
		{"User-handler1", "mission2", models.RoleHandler},
		{"User-agent1", "mission3", models.RoleAgent},
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := users.Save(ctx, u.username, string(hash), u.role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	seedGadgets := []struct {
		name        string
		description string
	}{
		{"Explosive Chewing Gum", "Looks like ordinary gum, explodes when dry"},
		{"Face Mapping Mask", "Creates perfect facial disguises in seconds"},
		{"Voice Modulator", "Mimics any voice after 5 seconds of audio"},
		{"Tracking Microchip", "Subcutaneous chip with global tracking"},
		{"Contact Lens Camera", "Captures 4K images and video with a blink"},
	}

	for _, g := range seedGadgets {
		for {
			_, err := gadgets.Save(ctx, g.name, gen.Codename(), g.description)
			if errors.Is(err, repositories.ErrCodenameExists) {
				continue
			}
			if err != nil {
				return fmt.Errorf("seed gadget %s: %w", g.name, err)
			}
			break
		}
	}

	return nil
}
