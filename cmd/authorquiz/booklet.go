package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/authorquiz/pkg/integrations"
	"github.com/kerbaras/authorquiz/pkg/logger"
	"github.com/kerbaras/authorquiz/pkg/services"
)

var (
	bookletRounds int
	bookletOutput string
)

var bookletCmd = &cobra.Command{
	Use:   "booklet",
	Short: "Export quiz rounds as an EPUB booklet",
	Long:  "Generate a number of rounds and write them, with an answer key, to an EPUB file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		cobra.CheckErr(err)

		if cmd.Flags().Changed("rounds") {
			cfg.Booklet.Rounds = bookletRounds
		}
		if cmd.Flags().Changed("output") {
			cfg.Booklet.Output = bookletOutput
		}
		cobra.CheckErr(cfg.Validate())

		log, err := logger.New(cfg)
		cobra.CheckErr(err)
		defer log.Sync()

		store, err := openStore(cfg)
		cobra.CheckErr(err)
		defer store.Close()

		rounds, err := services.GenerateRounds(store, services.NewRand(cfg.Seed), cfg.Booklet.Rounds)
		cobra.CheckErr(err)

		dir, name := filepath.Split(cfg.Booklet.Output)
		if dir == "" {
			dir = "."
		}

		builder := integrations.NewBookletBuilder(dir, cfg.ImageDir)
		path, err := builder.CreateBooklet(rounds, name)
		cobra.CheckErr(err)

		log.Info("booklet written",
			zap.String("path", path),
			zap.Int("rounds", len(rounds)),
		)
		fmt.Printf("📖 Wrote %d rounds to %s\n", len(rounds), path)
	},
}

func init() {
	bookletCmd.Flags().IntVarP(&bookletRounds, "rounds", "n", 10, "number of rounds")
	bookletCmd.Flags().StringVarP(&bookletOutput, "output", "o", "authorquiz.epub", "output EPUB file")
}
