package bootstrap

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/admin"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/password"
	"fieldbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedSuperadmin),
)

// seedSuperadmin guarantees at least one superadmin exists so the first
// operator can log in. It is idempotent: an existing account with the
// seed username is left untouched, password included.
func seedSuperadmin(lc fx.Lifecycle, cfg config.Config, uowProvider shared.UnitOfWork, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			existing, err := uowProvider.CommandReads().AdminByUsername(ctx, cfg.Seed.AdminUsername)
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrap(err, "failed to look up seed admin")
			}
			if existing != nil {
				return nil
			}

			username, err := admin.NewUsername(cfg.Seed.AdminUsername)
			if err != nil {
				return errs.Wrap(err, "invalid SEED_ADMIN_USERNAME")
			}
			hash, err := password.Hash(cfg.Seed.AdminPassword)
			if err != nil {
				return errs.Wrap(err, "failed to hash seed admin password")
			}

			user := admin.NewAdminUser(username, hash, admin.RoleSuperadmin)
			err = uowProvider.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				_, err := tx.Admins().Create(ctx, tx.DB(), user)
				return err
			})
			if err != nil {
				// Another replica may have seeded the same account first.
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return nil
				}
				return errs.Wrap(err, "failed to create seed admin")
			}

			logger.Info("seeded initial superadmin", "username", username.Value())
			return nil
		},
	})
}
