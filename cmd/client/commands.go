package main

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/bookkeeper/internal/client/cli"
	"github.com/iudanet/bookkeeper/internal/validation"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunLogin(cmd.Context(), loginEmail)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunLogout(cmd.Context())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and last sync",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunStatus(cmd.Context())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Synchronize and list books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunList(cmd.Context())
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show book details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}
		return app.RunGet(cmd.Context(), id)
	},
}

var (
	addForm    validation.BookForm
	updateForm validation.BookForm
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book (admin only)",
	Long: `Add creates a book in the local cache and on the server.
Fields not given as flags are prompted for.

Example:
  bookkeeper add --title "Dune" --price 9.99`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunAdd(cmd.Context(), addForm)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a book (admin only)",
	Long: `Update replaces the book in the local cache and on the server.
Fields not given as flags keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}
		return app.RunUpdate(cmd.Context(), id, updateForm)
	},
}

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}
		return app.RunDelete(cmd.Context(), id, deleteYes)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile local cache with server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunSync(cmd.Context())
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (prompted when empty)")

	for _, c := range []struct {
		cmd  *cobra.Command
		form *validation.BookForm
	}{
		{addCmd, &addForm},
		{updateCmd, &updateForm},
	} {
		c.cmd.Flags().StringVar(&c.form.Title, "title", "", "book title")
		c.cmd.Flags().StringVar(&c.form.Description, "description", "", "book description")
		c.cmd.Flags().StringVar(&c.form.Price, "price", "", "book price")
		c.cmd.Flags().StringVar(&c.form.Image, "image", "", "cover image URL")
	}

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "do not ask for confirmation")
}
