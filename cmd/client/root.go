package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/bookkeeper/internal/client/cli"
	"github.com/iudanet/bookkeeper/internal/client/iocli"
	"github.com/iudanet/bookkeeper/internal/client/session"
)

// Global flag values.
var (
	flagConfigDir   string
	flagServer      string
	flagDB          string
	flagState       string
	flagConcurrency int
)

// Состояние одного запуска, создается в PersistentPreRunE
var (
	sess      *session.Session
	app       *cli.Cli
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "bookkeeper",
	Short: "Bookkeeper keeps a local book catalogue in sync with a server",
	Long: `Bookkeeper is a client for a book storefront. Books are kept in a local
SQLite cache and reconciled with the remote server on every list and sync.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openSession,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfigDir, "config", "", "configuration directory (default: <user config dir>/bookkeeper)")
	flags.StringVar(&flagServer, "server", "", "server URL (default: "+defaultServer+")")
	flags.StringVar(&flagDB, "db", "", "path to local book cache")
	flags.StringVar(&flagState, "state", "", "path to session state file")
	flags.IntVar(&flagConcurrency, "concurrency", 0, "parallel operations per sync phase")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(syncCmd)
}

// openSession загружает конфигурацию и открывает хранилища
func openSession(cmd *cobra.Command, args []string) error {
	if cmd.Name() == versionCmd.Name() {
		return nil
	}

	configDir, err := resolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	logger, closer, err := newLogger(v)
	if err != nil {
		return err
	}
	logCloser = closer

	sess, err = session.Open(cmd.Context(), sessionConfig(v), logger)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	app = cli.New(iocli.NewStdio(), sess.Auth, sess.Books, sess.Reconciler)
	return nil
}

// closeSession закрывает хранилища и лог; вызывается и после ошибки команды
func closeSession() error {
	var errs []error
	if sess != nil {
		errs = append(errs, sess.Close())
	}
	if logCloser != nil {
		errs = append(errs, logCloser.Close())
	}
	return errors.Join(errs...)
}

// bindFlags флаги командной строки важнее config.yaml и окружения
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for key, name := range map[string]string{
		cfgKeyServer:      "server",
		cfgKeyDB:          "db",
		cfgKeyState:       "state",
		cfgKeyConcurrency: "concurrency",
	} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
