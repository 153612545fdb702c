package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr           string
	Password       string
	SlotTTLMinutes int
}

type SessionConfig struct {
	ExpiryHours int
}

type BookingConfig struct {
	// RejectPastDates turns on rejection of bookings for dates in the
	// past. Off by default: backfilling historical appointments is a
	// thing the salon staff actually do.
	RejectPastDates bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BOOKING_REJECT_PAST_DATES", false)
	viper.SetDefault("REDIS_SLOT_TTL_MINUTES", 5)
	viper.SetDefault("RATE_LIMIT_RPS", 2)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:           viper.GetString("REDIS_ADDR"),
			Password:       viper.GetString("REDIS_PASS"),
			SlotTTLMinutes: viper.GetInt("REDIS_SLOT_TTL_MINUTES"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			RejectPastDates: viper.GetBool("BOOKING_REJECT_PAST_DATES"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
