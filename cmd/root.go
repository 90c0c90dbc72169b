package cmd

import (
	"errors"
	"log"

	"hrkeeper/internal/logger"
	"hrkeeper/internal/notify"
	"hrkeeper/internal/secrets"
	"hrkeeper/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app            = "hrkeeper"
	defaultDataDir = "hr_data"
)

type Config struct {
	DataDir string      `mapstructure:"data-dir"`
	SMTP    *SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	PasswordFile string `mapstructure:"password-file"`
	From         string `mapstructure:"from"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hrkeeper is a simple cli for keeping candidate, position and interview records",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("smtp.password-file", "SMTP_PASSWORD_FILE"); err != nil {
		log.Fatalf("binding SMTP_PASSWORD_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hrkeeper.yaml in current directory)")
	rootCmd.PersistentFlags().String("data-dir", defaultDataDir, "directory holding the JSON record files")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; a parse error is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.DataDir == "" {
		config.DataDir = defaultDataDir
	}
	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func openStore(logger *zap.Logger) (*store.Store, *Config) {
	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, err := store.Open(config.DataDir, logger)
	if err != nil {
		logger.Fatal("opening the store", zap.String("data_dir", config.DataDir), zap.Error(err))
	}

	return st, config
}

// newNotifier builds the SMTP notifier when configured, falling back to a
// log-only notifier otherwise.
func newNotifier(config *Config, logger *zap.Logger) notify.Notifier {
	if config.SMTP == nil || config.SMTP.Host == "" {
		return notify.NewLog(logger)
	}

	passwordFile := config.SMTP.PasswordFile
	if passwordFile == "" {
		passwordFile = viper.GetString("smtp.password-file")
	}

	password, err := secrets.Resolve("smtp password", passwordFile, "")
	if err != nil && config.SMTP.Username != "" {
		logger.Warn("smtp password is not available, notifications disabled", zap.Error(err))
		return notify.NewLog(logger)
	}

	notifier, err := notify.NewSMTP(notify.SMTPConfig{
		Host:     config.SMTP.Host,
		Port:     config.SMTP.Port,
		Username: config.SMTP.Username,
		Password: password,
		From:     config.SMTP.From,
	})
	if err != nil {
		logger.Warn("smtp notifier misconfigured, notifications disabled", zap.Error(err))
		return notify.NewLog(logger)
	}

	return notifier
}
