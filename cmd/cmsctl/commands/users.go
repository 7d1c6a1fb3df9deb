package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	database "cms_backend/internals/databases"
	seedUsers "cms_backend/internals/seeds/users/auth"
)

var (
	adminEmail    string
	adminPassword string
	usersFile     string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account if the email is free",
	Long: `Create an active admin account. The password must be changed on first
login. Nothing happens when the email is already registered.

Examples:
  cmsctl create-admin --email admin@example.com --password 'changeme123'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		created, err := seedUsers.EnsureAdmin(cmd.Context(), db, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", adminEmail)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", adminEmail)
		}
		return nil
	},
}

var seedUsersCmd = &cobra.Command{
	Use:   "seed-users",
	Short: "Insert users from a JSON file",
	Long: `Insert users from a JSON array of {"email","password","is_admin"}
objects. Existing emails are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if usersFile == "" {
			return errors.New("--file is required")
		}
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		n, err := seedUsers.SeedUsersFromJSON(cmd.Context(), db, usersFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d users created\n", n)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Initial password (required)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	seedUsersCmd.Flags().StringVar(&usersFile, "file", "", "Path to the users JSON file")

	rootCmd.AddCommand(createAdminCmd, seedUsersCmd)
}
