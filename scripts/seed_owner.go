package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/avlorenzana/jobtrail/adapters/identity"
	"github.com/avlorenzana/jobtrail/internal/config"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func main() {
	fmt.Println("creating owner account on identity service...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	OWNER_EMAIL := os.Getenv("OWNER_EMAIL")
	OWNER_PASSWORD := os.Getenv("OWNER_PASSWORD")
	OWNER_NAME := os.Getenv("OWNER_NAME")
	if OWNER_EMAIL == "" || OWNER_PASSWORD == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD must be set")
	}

	svc, err := identity.NewGoTrueAdapter(cfg, logger.NewZapLogger(cfg.App.Env))
	if err != nil {
		log.Fatalf("cannot init identity service: %v", err)
	}

	id, err := svc.SignUp(context.Background(), OWNER_EMAIL, OWNER_PASSWORD, OWNER_NAME)
	if err != nil {
		log.Fatalf("cannot create owner: %v", err)
	}

	fmt.Printf("created owner '%s' (id %s) successfully!\n", id.Email, id.ID)
}
