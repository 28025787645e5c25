package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/authorquiz/pkg/app"
	"github.com/kerbaras/authorquiz/pkg/config"
	"github.com/kerbaras/authorquiz/pkg/data"
	"github.com/kerbaras/authorquiz/pkg/integrations"
	"github.com/kerbaras/authorquiz/pkg/logger"
	"github.com/kerbaras/authorquiz/pkg/services"
	"github.com/kerbaras/authorquiz/pkg/sources"
)

const portraitCells = 24

var (
	configFile  string
	authorsFile string
	storeKind   string
	seed        uint64
)

var rootCmd = &cobra.Command{
	Use:   "authorquiz",
	Short: "Guess which book an author wrote",
	Long:  "A terminal quiz: pick the book written by the author shown, or add your own authors",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		cobra.CheckErr(err)

		log, err := logger.NewForTUI(cfg)
		cobra.CheckErr(err)
		defer log.Sync()

		store, err := openStore(cfg)
		cobra.CheckErr(err)
		defer store.Close()

		controller, err := services.NewQuizController(store, services.NewRand(cfg.Seed), log)
		cobra.CheckErr(err)

		log.Info("starting quiz",
			zap.String("store", cfg.Store),
			zap.Uint64("seed", cfg.Seed),
		)

		a := app.NewApp(controller, integrations.NewPortraitRenderer(cfg.ImageDir, portraitCells))
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config/config.yaml or $HOME/.authorquiz/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&authorsFile, "authors", "", "JSON file with the authors to quiz on (default built-in set)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "dataset store: memory or duckdb")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")

	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(bookletCmd)
}

// loadConfig reads the config and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("authors") {
		cfg.AuthorsFile = authorsFile
	}
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (data.Store, error) {
	return services.OpenStore(cfg, sources.New(cfg.AuthorsFile))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
