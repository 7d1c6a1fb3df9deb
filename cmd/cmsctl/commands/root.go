package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"cms_backend/internals/configs"
	database "cms_backend/internals/databases"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cmsctl",
	Short: "Maintenance tasks for the CMS backend",
	Long: `cmsctl runs one-off maintenance against the CMS database and upload
directory, using the same configuration as the server (env, .env and
CMS_CONFIG_FILE).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Root exposes the command tree for tests.
func Root() *cobra.Command { return rootCmd }

func openDB() (*configs.Config, *gorm.DB, error) {
	cfg, err := configs.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
