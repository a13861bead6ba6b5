package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress     = "localhost:8080"
	DefaultMigrationsDir  = "internal/db/migrations"
	DefaultChallengeGoal  = 10000
	DefaultChallengeStart = "2024-02-01"
	DefaultChallengeEnd   = "2024-03-02"
	DefaultTimezone       = "UTC"
)

type Config struct {
	RunAddress         string   `env:"RUN_ADDRESS"`
	DatabaseDSN        string   `env:"DATABASE_URI"`
	MigrationsDir      string   `env:"MIGRATIONS_DIR"`
	JWTUserSecret      string   `env:"JWT_SECRET"`
	AdminSecret        string   `env:"ADMIN_SECRET"`
	ChallengeGoal      int64    `env:"CHALLENGE_GOAL"`
	ChallengeStartDate string   `env:"CHALLENGE_START_DATE"`
	ChallengeEndDate   string   `env:"CHALLENGE_END_DATE"`
	Timezone           string   `env:"TIMEZONE"`
	CORSOrigins        []string `env:"CORS_ORIGINS"          envSeparator:","`

	// Location разобранный Timezone, заполняется в LoadConfig.
	Location *time.Location `env:"-"`
}

// String не выводит секреты в лог.
func (c *Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s ChallengeGoal:%d Challenge:%s..%s Timezone:%s CORSOrigins:%v}",
		c.RunAddress, c.MigrationsDir, c.ChallengeGoal, c.ChallengeStartDate, c.ChallengeEndDate, c.Timezone, c.CORSOrigins,
	)
}

// LoadConfig собирает конфигурацию из .env файла, переменных окружения и флагов командной строки.
// Переменные окружения имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", dotenvErr)
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig(args []string) *Config {
	config, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("salesboard", flag.ContinueOnError)

	var origins string
	flagSet.StringVar(&flagConfig.RunAddress, "a", DefaultRunAddress, "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", DefaultMigrationsDir, "Database migrations directory")
	flagSet.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flagSet.StringVar(&flagConfig.AdminSecret, "admin-secret", "", "Secret for the admin reset endpoint, empty disables it")
	flagSet.Int64Var(&flagConfig.ChallengeGoal, "goal", DefaultChallengeGoal, "Challenge earnings goal")
	flagSet.StringVar(&flagConfig.ChallengeStartDate, "start", DefaultChallengeStart, "Challenge start date YYYY-MM-DD")
	flagSet.StringVar(&flagConfig.ChallengeEndDate, "end", DefaultChallengeEnd, "Challenge end date YYYY-MM-DD")
	flagSet.StringVar(&flagConfig.Timezone, "tz", DefaultTimezone, "IANA timezone used for calendar days")
	flagSet.StringVar(&origins, "cors", "", "Comma separated list of allowed origins")

	if err := flagSet.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}
	flagConfig.CORSOrigins = splitList(origins)
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:      defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		AdminSecret:        defaultIfBlank(envConfig.AdminSecret, flagsConfig.AdminSecret),
		ChallengeGoal:      flagsConfig.ChallengeGoal,
		ChallengeStartDate: defaultIfBlank(envConfig.ChallengeStartDate, flagsConfig.ChallengeStartDate),
		ChallengeEndDate:   defaultIfBlank(envConfig.ChallengeEndDate, flagsConfig.ChallengeEndDate),
		Timezone:           defaultIfBlank(envConfig.Timezone, flagsConfig.Timezone),
		CORSOrigins:        flagsConfig.CORSOrigins,
	}
	if envConfig.ChallengeGoal != 0 {
		conf.ChallengeGoal = envConfig.ChallengeGoal
	}
	if len(envConfig.CORSOrigins) > 0 {
		conf.CORSOrigins = envConfig.CORSOrigins
	}
	return conf
}

func (c *Config) validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.JWTUserSecret == "" {
		return errors.New("JWT secret is not set")
	}
	if c.ChallengeGoal <= 0 {
		return fmt.Errorf("challenge goal must be positive, got %d", c.ChallengeGoal)
	}

	start, startErr := time.Parse(time.DateOnly, c.ChallengeStartDate)
	if startErr != nil {
		return fmt.Errorf("challenge start date: %w", startErr)
	}
	end, endErr := time.Parse(time.DateOnly, c.ChallengeEndDate)
	if endErr != nil {
		return fmt.Errorf("challenge end date: %w", endErr)
	}
	if end.Before(start) {
		return errors.New("challenge end date is before start date")
	}

	loc, locErr := time.LoadLocation(c.Timezone)
	if locErr != nil {
		return fmt.Errorf("timezone: %w", locErr)
	}
	c.Location = loc
	return nil
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
