package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ecalderon/guidancehub/internal/app/models"
	appRepos "github.com/ecalderon/guidancehub/internal/app/repositories"
	"github.com/ecalderon/guidancehub/internal/config"
	"github.com/ecalderon/guidancehub/internal/pkg/auth"
)

// CreateDefaultData creates the built-in admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin account already present")
		return nil
	}

	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin password not configured, skipping admin account creation")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &appModels.User{
		Email:     cfg.Admin.Email,
		Password:  hashed,
		FirstName: "Guidance",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin account created")
	return nil
}
