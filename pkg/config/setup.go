package pkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the configuration for the application
type Config struct {
	ENV               string        `mapstructure:"ENV"`
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBSource          string        `mapstructure:"POSTGRES_URL"`
	MigrationUrl      string        `mapstructure:"MIGRATION_URL"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	HttpServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RateProviderUrl   string        `mapstructure:"RATE_PROVIDER_URL"`
	RateSyncTTL       time.Duration `mapstructure:"RATE_SYNC_TTL"`
	DirectoryCacheTTL time.Duration `mapstructure:"DIRECTORY_CACHE_TTL"`
	CleanupInterval   time.Duration `mapstructure:"CLEANUP_INTERVAL"`

	EmailSenderName     string `mapstructure:"EMAIL_SENDER_NAME"`
	EmailSenderAddress  string `mapstructure:"EMAIL_SENDER_ADDRESS"`
	EmailSenderPassword string `mapstructure:"EMAIL_SENDER_PASSWORD"`
	SmtpServerAddress   string `mapstructure:"SMTP_SERVER_ADDRESS"`
	AWSRegion           string `mapstructure:"AWS_REGION"`
	AWSAcessKeyID       string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey        string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
}

// LoadConfig loads the configuration from the file
func LoadConfig(path string) (config Config, err error) {
	if path == "" {
		path = "." // Default to current directory if no path is provided
	}
	viper.AddConfigPath(path)
	viper.SetConfigName(".env") // Set the config name to ".env" without the extension
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("RATE_SYNC_TTL", "15m")
	viper.SetDefault("DIRECTORY_CACHE_TTL", "1m")
	viper.SetDefault("CLEANUP_INTERVAL", "5m")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
