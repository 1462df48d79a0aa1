package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/vocapture/vocapture/pkg/validator"
)

type Config struct {
	Audio     AudioConfig     `mapstructure:"audio" validate:"required"`
	Paths     PathsConfig     `mapstructure:"paths" validate:"required"`
	DB        DBConfig        `mapstructure:"db" validate:"required"`
	Review    ReviewConfig    `mapstructure:"review" validate:"required"`
	Variants  VariantsConfig  `mapstructure:"variants"`
	Notify    NotifyConfig    `mapstructure:"notify" validate:"required"`
	Retention RetentionConfig `mapstructure:"retention"`
	Env       string          `mapstructure:"env" validate:"oneof=development production staging"`
}

type AudioConfig struct {
	SampleRate         int           `mapstructure:"sample_rate" validate:"min=8000,max=192000"`
	Channels           int           `mapstructure:"channels" validate:"min=1,max=2"`
	BlockSize          int           `mapstructure:"block_size" validate:"min=1"`
	SilenceThresholdDB float64       `mapstructure:"silence_threshold_db" validate:"max=0"`
	StartSilence       time.Duration `mapstructure:"start_silence" validate:"min=1ms"`
	EndSilence         time.Duration `mapstructure:"end_silence" validate:"min=1ms"`
	MaxDuration        time.Duration `mapstructure:"max_duration" validate:"min=1s"`
	Padding            time.Duration `mapstructure:"padding" validate:"min=0"`
}

type PathsConfig struct {
	SaveDir string `mapstructure:"save_dir" validate:"required"`
	DBPath  string `mapstructure:"db_path" validate:"required"`
}

type DBConfig struct {
	BusyTimeout  time.Duration `mapstructure:"busy_timeout" validate:"min=0"`
	WALMode      bool          `mapstructure:"wal_mode"`
	RetryCount   int           `mapstructure:"retry_count" validate:"min=1,max=20"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" validate:"min=0"`
}

type ReviewConfig struct {
	BoxIntervals  []int `mapstructure:"box_intervals" validate:"required,min=1,dive,min=1"`
	MaxWordLength int   `mapstructure:"max_word_length" validate:"min=1"`
}

type VariantsConfig struct {
	Enabled bool      `mapstructure:"enabled"`
	Speeds  []float64 `mapstructure:"speeds" validate:"dive,gt=0,lt=1"`
}

type NotifyConfig struct {
	Host    string        `mapstructure:"host" validate:"required"`
	Port    int           `mapstructure:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1ms"`
}

type RetentionConfig struct {
	MaxDates     int           `mapstructure:"max_dates" validate:"min=1"`
	CleanupDelay time.Duration `mapstructure:"cleanup_delay" validate:"min=0"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setDefaults(v)

	if err := v.BindEnv("paths.save_dir", "VOCAPTURE_SAVE_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAPTURE_SAVE_DIR: %w", err)
	}
	if err := v.BindEnv("paths.db_path", "VOCAPTURE_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAPTURE_DB_PATH: %w", err)
	}
	if err := v.BindEnv("notify.port", "VOCAPTURE_NOTIFY_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAPTURE_NOTIFY_PORT: %w", err)
	}
	if err := v.BindEnv("env", "VOCAPTURE_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAPTURE_ENV: %w", err)
	}

	// Every key has a default, so a missing config file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if err := validateIntervals(cfg.Review.BoxIntervals); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("audio.sample_rate", 48000)
	v.SetDefault("audio.channels", 2)
	v.SetDefault("audio.block_size", 4800)
	v.SetDefault("audio.silence_threshold_db", -40.0)
	v.SetDefault("audio.start_silence", 6*time.Second)
	v.SetDefault("audio.end_silence", 1500*time.Millisecond)
	v.SetDefault("audio.max_duration", 30*time.Second)
	v.SetDefault("audio.padding", 300*time.Millisecond)

	v.SetDefault("paths.save_dir", "audio")
	v.SetDefault("paths.db_path", "data.db")

	v.SetDefault("db.busy_timeout", 5*time.Second)
	v.SetDefault("db.wal_mode", true)
	v.SetDefault("db.retry_count", 3)
	v.SetDefault("db.retry_backoff", 100*time.Millisecond)

	v.SetDefault("review.box_intervals", []int{1, 2, 4, 7, 14})
	v.SetDefault("review.max_word_length", 35)

	v.SetDefault("variants.enabled", true)
	v.SetDefault("variants.speeds", []float64{0.5, 0.75})

	v.SetDefault("notify.host", "127.0.0.1")
	v.SetDefault("notify.port", 65432)
	v.SetDefault("notify.timeout", time.Second)

	v.SetDefault("retention.max_dates", 15)
	v.SetDefault("retention.cleanup_delay", 60*time.Second)

	v.SetDefault("env", "production")
}

// Box intervals must not shrink as the box level grows, otherwise a promoted
// item would come back sooner than a less-known one.
func validateIntervals(intervals []int) error {
	for i := 1; i < len(intervals); i++ {
		if intervals[i] < intervals[i-1] {
			return fmt.Errorf("review.box_intervals must be non-decreasing, got %v", intervals)
		}
	}
	return nil
}
