package main

import (
	"fmt"

	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/messaging"
	"github.com/matst80/slask-storefront/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publish bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built in products to storage",
	Long: `Writes the built in product fixtures to SQLITE_PATH, or to products.json under
DATA_DIR when no sqlite path is set. With --publish the products are also sent as
upserts to RabbitMQ so running servers pick them up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		products := storage.Fixtures()
		if err = store.Persist(ctx, products, nil); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		logger.Info("seeded products", zap.Int("products", len(products)))

		if !publish {
			return nil
		}
		if cfg.RabbitUrl == "" {
			return fmt.Errorf("--publish needs RABBIT_URL")
		}
		conn, err := connectAmqp(cfg.RabbitUrl)
		if err != nil {
			return err
		}
		defer conn.Close()
		publisher, err := messaging.NewProductPublisher(conn, cfg.Country)
		if err != nil {
			return err
		}
		if err = publisher.SendUpserted(products); err != nil {
			return err
		}
		logger.Info("published products", zap.String("prefix", cfg.Country))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&publish, "publish", false, "also publish the products to RabbitMQ")
}
