package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	database "cms_backend/internals/databases"
	auditScheduler "cms_backend/internals/features/audit_logs/scheduler"
	auditService "cms_backend/internals/features/audit_logs/service"
	uploadScheduler "cms_backend/internals/features/uploads/scheduler"
	"cms_backend/internals/helpers/storage"
)

var (
	purgeDays  int
	reapGrace  time.Duration
	reapDryRun bool
)

var purgeLogsCmd = &cobra.Command{
	Use:   "purge-logs",
	Short: "Delete audit logs older than the retention window",
	Long: `Delete audit logs older than --days (default LOG_RETENTION_DAYS) and
record a SYSTEM_CLEANUP entry when anything was removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		days := cfg.LogRetentionDays
		if purgeDays > 0 {
			days = purgeDays
		}
		n, err := auditScheduler.RunRetentionSweep(cmd.Context(), auditService.New(db), days)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d audit logs removed\n", n)
		return nil
	},
}

var reapOrphansCmd = &cobra.Command{
	Use:   "reap-orphans",
	Short: "Remove upload files no row references",
	Long: `Remove files in the upload directory that no category, content item or
photo references and that are older than --grace.

Examples:
  cmsctl reap-orphans --dry-run        # list candidates only
  cmsctl reap-orphans --grace 48h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		store, err := storage.NewLocalStore(cfg.UploadDir, cfg.StaticURLPrefix)
		if err != nil {
			return err
		}
		grace := cfg.OrphanGrace()
		if cmd.Flags().Changed("grace") {
			grace = reapGrace
		}

		rep, err := uploadScheduler.RunOrphanSweep(cmd.Context(), db, store, auditService.New(db), grace, reapDryRun, nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range rep.Files {
			fmt.Fprintln(out, f)
		}
		fmt.Fprintf(out, "scanned=%d referenced=%d removed=%d freed=%dB dry_run=%v\n",
			rep.Scanned, rep.Referenced, rep.Removed, rep.FreedBytes, reapDryRun)
		return nil
	},
}

func init() {
	purgeLogsCmd.Flags().IntVar(&purgeDays, "days", 0, "Retention in days (default LOG_RETENTION_DAYS)")

	reapOrphansCmd.Flags().DurationVar(&reapGrace, "grace", 24*time.Hour, "Skip files younger than this")
	reapOrphansCmd.Flags().BoolVar(&reapDryRun, "dry-run", false, "List candidates without deleting")

	rootCmd.AddCommand(purgeLogsCmd, reapOrphansCmd)
}
