package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/mongoreservation"
	"github.com/m04kA/SMC-ReservationService/internal/migrate"
)

const migrateTimeout = 2 * time.Minute

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (postgres) or create indexes (mongo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			switch cfg.Storage.Driver {
			case config.DriverPostgres:
				db, err := openPostgres(ctx, cfg.Database, log)
				if err != nil {
					return err
				}
				defer db.Close()

				applied, err := migrate.Up(ctx, db)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					log.Info("Migrations: schema is up to date")
				}
				for _, name := range applied {
					log.Info("Migrations: applied %s", name)
				}

			case config.DriverMongo:
				client, err := openMongo(ctx, cfg.Mongo, log)
				if err != nil {
					return err
				}
				defer func() { _ = client.Disconnect(context.Background()) }()

				if err := mongoreservation.NewRepository(client.Database(cfg.Mongo.Database)).EnsureIndexes(ctx); err != nil {
					return err
				}
				log.Info("Migrations: mongo indexes ensured")

			default:
				log.Info("Migrations: nothing to do for storage driver %s", cfg.Storage.Driver)
			}

			return nil
		},
	}
}
