package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Storage settings for user-uploaded media. The base URL points at the
	// object storage gateway; bucket names may be left unset (or left at a
	// template placeholder) and fall back to defaults.
	StorageBaseURL string `mapstructure:"STORAGE_BASE_URL"`
	AvatarBucket   string `mapstructure:"STORAGE_AVATAR_BUCKET"`
	MediaBucket    string `mapstructure:"STORAGE_MEDIA_BUCKET"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	AppConfig.AvatarBucket = NormalizeBucket(AppConfig.AvatarBucket, "avatars")
	AppConfig.MediaBucket = NormalizeBucket(AppConfig.MediaBucket, "media")
}

// NormalizeBucket resolves a configured bucket name, treating empty values
// and the placeholder names shipped in .env templates as unset.
func NormalizeBucket(value, fallback string) string {
	switch value {
	case "", "your_bucket_id", "your_avatar_bucket", "your_media_bucket":
		return fallback
	}
	return value
}
