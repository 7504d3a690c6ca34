// Package cli defines the cobra command tree for cnk.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/catalog"
	"github.com/cnk-ceneka/cnk/internal/config"
	"github.com/cnk-ceneka/cnk/internal/db"
	"github.com/cnk-ceneka/cnk/internal/logging"
	"github.com/cnk-ceneka/cnk/internal/retry"
)

var (
	flagFormat  string
	flagConfig  string
	flagEnvFile string
	flagAPI     string
	flagDB      string
	flagDev     bool

	// settings is loaded before every command runs.
	settings config.Config
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cnk",
		Short: "CNK Ceneka real-estate site",
		Long: "Serve the CNK Ceneka brokerage website and browse its property catalog " +
			"from the command line.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/cnk/config.yaml)")
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "dotenv file to load (default: .env)")
	root.PersistentFlags().StringVar(&flagAPI, "api", "", "catalog API base URL")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/cnk/cnk.db)")
	root.PersistentFlags().BoolVar(&flagDev, "dev", false, "human-readable debug logging")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
		newGalleryCmd(),
		newTranslateCmd(),
		newInquiriesCmd(),
		newVersionCmd(),
	)

	return root
}

// loadSettings reads the configuration, applies flag overrides and sets up
// logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	if flagFormat != "text" && flagFormat != "json" {
		return fmt.Errorf("invalid --format %q: use text or json", flagFormat)
	}

	cfg, err := config.Load(flagConfig, flagEnvFile)
	if err != nil {
		return err
	}
	if flagAPI != "" {
		cfg.APIBaseURL = flagAPI
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagDev {
		cfg.DevMode = true
	}

	logging.Setup(cfg.DevMode)
	settings = cfg
	return nil
}

// openDB opens the SQLite database from the settings or the default path.
func openDB() (*sql.DB, error) {
	path := settings.DBPath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newCatalogClient creates a client for the configured catalog API.
func newCatalogClient() (*catalog.Client, error) {
	return catalog.NewClient(settings.APIBaseURL, catalog.Options{
		Policy:    retry.Default(),
		Timeout:   settings.HTTPTimeout,
		UserAgent: "cnk/" + Version,
	})
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
