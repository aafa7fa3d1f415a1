// Command seed provisions the demo accounts: one admin and three regular
// users. Existing users are wiped first, so each run starts from a clean
// slate. Intended for local development only.
package main

import (
	"context"
	"time"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/infrastructure/config"
	mongodb "github.com/saiketsystems/user-management-api/internal/infrastructure/db/mongo"
	"github.com/saiketsystems/user-management-api/internal/pkg/password"
	"github.com/saiketsystems/user-management-api/pkg/logger"
)

type seedAccount struct {
	username string
	email    string
	password string
	fullName string
	age      int
	bio      string
	role     string
}

var accounts = []seedAccount{
	{"admin", "admin@saiket.com", "admin123", "System Admin", 30, "System Administrator", domain.RoleAdmin},
	{"johndoe", "john@example.com", "user123", "John Doe", 28, "Software Developer", domain.RoleUser},
	{"janesmith", "jane@example.com", "user123", "Jane Smith", 32, "Product Designer", domain.RoleUser},
	{"bobwilson", "bob@example.com", "user123", "Bob Wilson", 45, "Marketing Manager", domain.RoleUser},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("clearing users failed")
	}
	log.Info().Msg("cleared existing users")

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	now := time.Now().UTC()

	for _, acc := range accounts {
		hash, err := hasher.Hash(acc.password)
		if err != nil {
			log.Fatal().Err(err).Str("username", acc.username).Msg("hashing failed")
		}

		age := acc.age
		created, err := repo.Insert(ctx, &domain.User{
			Username:     acc.username,
			Email:        acc.email,
			PasswordHash: hash,
			FullName:     acc.fullName,
			Age:          &age,
			Bio:          acc.bio,
			Role:         acc.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("username", acc.username).Msg("seeding failed")
		}
		log.Info().Str("id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("seeded user")
	}

	log.Info().Int("count", len(accounts)).Msg("seed complete")
}
