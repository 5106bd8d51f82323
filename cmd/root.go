package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/azeroual/comptable/cmd/account"
	"github.com/azeroual/comptable/cmd/category"
	"github.com/azeroual/comptable/cmd/client"
	"github.com/azeroual/comptable/cmd/invoice"
	"github.com/azeroual/comptable/cmd/product"
	"github.com/azeroual/comptable/cmd/transaction"
	"github.com/azeroual/comptable/cmd/user"
	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/errhandler"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	defaultUser, err := initDefaultUser(application.Service)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "comptable",
		Short:         "comptable is a CLI double-entry bookkeeping tool",
		Long:          `comptable is a CLI double-entry bookkeeping tool`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application, cfg))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application, cfg, defaultUser))
	rootCmd.AddCommand(user.NewUserCmd(application.Service))
	rootCmd.AddCommand(client.NewClientCmd(application.Service))
	rootCmd.AddCommand(category.NewCategoryCmd(application.Service))
	rootCmd.AddCommand(product.NewProductCmd(application.Service))
	rootCmd.AddCommand(invoice.NewInvoiceCmd(application, cfg, defaultUser))

	rootCmd.AddCommand(NewJournalCmd(application, cfg))
	rootCmd.AddCommand(NewBalanceCmd(application, cfg))
	rootCmd.AddCommand(NewInitCmd(application, cfg))

	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

// initDefaultUser resolves the configured default user, creating it on first
// run. Commands stamp journal entries with this user unless --user overrides
// it.
func initDefaultUser(svc *service.Service) (*model.User, error) {
	name := cfg.Defaults.User
	if name == "" {
		name = "admin"
	}

	return svc.User.EnsureDefault(name)
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("COMPTABLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".comptable"), nil
	}

	return filepath.Join(configDir, "comptable"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	viper.SetDefault("defaults.currency", "EUR")
	viper.SetDefault("defaults.user", "admin")

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
