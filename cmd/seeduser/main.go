// Command seeduser upserts an admin user row bound to an identity provider
// subject, for bootstrapping a fresh deployment.
package main

import (
	"context"
	"flag"

	"stockroom/internal/config"
	"stockroom/internal/infra"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	uid := flag.String("uid", "", "identity provider subject id")
	username := flag.String("username", "admin", "username")
	email := flag.String("email", "", "email address")
	fullName := flag.String("name", "Administrator", "full name")
	flag.Parse()

	if *uid == "" || *email == "" {
		log.Fatal().Msg("-uid and -email are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	db, err := infra.OpenDatabase(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	existing, err := users.FindByIdentityUID(ctx, *uid)
	if err != nil {
		log.Fatal().Err(err).Msg("lookup failed")
	}
	if existing != nil {
		if _, err := users.Update(ctx, existing.ID, map[string]any{
			"role":      model.RoleAdmin,
			"is_active": true,
		}); err != nil {
			log.Fatal().Err(err).Msg("update failed")
		}
		log.Info().Uint("user_id", existing.ID).Msg("existing user promoted to admin")
		return
	}

	user := model.User{
		IdentityUID: *uid,
		Username:    *username,
		Email:       *email,
		FullName:    *fullName,
		Role:        model.RoleAdmin,
		IsActive:    true,
	}
	if err := users.Create(ctx, &user); err != nil {
		log.Fatal().Err(err).Msg("create failed")
	}
	log.Info().Uint("user_id", user.ID).Msg("admin user created")
}
