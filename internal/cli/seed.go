package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"area-match-service/internal/config"
	"area-match-service/internal/content"
)

// NewSeedCmd publishes the embedded catalog into Postgres, so the database
// can take over as the content source with identical data.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upload the bundled content catalog to Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(ctx, cfg); err != nil {
				return err
			}

			catalog, err := content.Default()
			if err != nil {
				return err
			}
			if cfg.Content.Catalog != "" {
				catalog.ID = cfg.Content.Catalog
			}
			data, err := json.Marshal(catalog)
			if err != nil {
				return fmt.Errorf("marshal catalog: %w", err)
			}

			sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
			db := bun.NewDB(sqldb, pgdialect.New())
			defer db.Close()

			if _, err := db.ExecContext(ctx,
				`INSERT INTO catalogs (id, data, updated_at) VALUES (?, ?::jsonb, now())
				 ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data, updated_at=now()`,
				catalog.ID, string(data)); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			log.Printf("seeded catalog %s", catalog.ID)
			return nil
		},
	}
}
