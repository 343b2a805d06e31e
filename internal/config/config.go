// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/amortization"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/datetime"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for the loan calculator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Loan    LoanConfig    `yaml:"loan,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoanConfig holds the loan parameters for a CLI computation or an uploaded
// loan file. Mirrors amortization.LoanParameters with config-friendly types.
type LoanConfig struct {
	Principal          float64 `yaml:"principal"`
	AnnualInterestRate float64 `yaml:"annualInterestRate"` // decimal fraction, 0.06 = 6%
	TermYears          int     `yaml:"termYears"`
	Frequency          string  `yaml:"frequency"` // monthly, biweekly, weekly
	ExtraPayment       float64 `yaml:"extraPayment,omitempty"`
	StartDate          string  `yaml:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
}

// ServerConfig holds runtime parameters for the HTTP server.
type ServerConfig struct {
	Address       string      `yaml:"address,omitempty"`
	MaxUploadSize int64       `yaml:"maxUploadSize,omitempty"` // bytes
	Auth          AuthConfig  `yaml:"auth,omitempty"`
	Cache         CacheConfig `yaml:"cache,omitempty"`
}

// AuthConfig holds the static credential set gating the calculator. Either a
// plaintext password or a bcrypt hash may be configured; the hash wins.
type AuthConfig struct {
	Username     string `yaml:"username,omitempty"`
	Password     string `yaml:"password,omitempty"`
	PasswordHash string `yaml:"passwordHash,omitempty"`
}

// CacheConfig selects the backend holding computed schedules for export.
type CacheConfig struct {
	Backend      string `yaml:"backend,omitempty"` // memory, redis
	RedisAddress string `yaml:"redisAddress,omitempty"`
}

// Cache backend names.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an uploaded loan file.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Server.MaxUploadSize <= 0 {
		conf.Server.MaxUploadSize = constants.DefaultMaxUploadSizeBytes
	}
	if conf.Server.Cache.Backend == "" {
		conf.Server.Cache.Backend = CacheBackendMemory
	}
}

// Parameters converts the loan section into engine parameters, defaulting an
// unspecified start date to the current day.
func (loan LoanConfig) Parameters() (amortization.LoanParameters, error) {
	return loan.ParametersAt(time.Now())
}

// ParametersAt converts the loan section into engine parameters using a fixed
// fallback date for an unspecified start date.
func (loan LoanConfig) ParametersAt(fixedTime time.Time) (amortization.LoanParameters, error) {
	params := amortization.LoanParameters{
		Principal:          loan.Principal,
		AnnualInterestRate: loan.AnnualInterestRate,
		TermYears:          loan.TermYears,
		ExtraPayment:       loan.ExtraPayment,
	}

	frequency, ok := amortization.ParseFrequency(loan.Frequency)
	if !ok && loan.Frequency != "" {
		return params, fmt.Errorf("unrecognized payment frequency %q", loan.Frequency)
	}
	if loan.Frequency == "" {
		frequency = amortization.Monthly
	}
	params.Frequency = frequency

	if loan.StartDate == "" {
		start, err := datetime.ParseDate(fixedTime.Format(DateTimeLayout))
		if err != nil {
			return params, err
		}
		params.StartDate = start
		return params, nil
	}

	start, err := datetime.ParseDate(loan.StartDate)
	if err != nil {
		return params, fmt.Errorf("failed to parse loan start date: %w", err)
	}
	params.StartDate = start
	return params, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Server.Auth.Username == "" || (conf.Server.Auth.Password == "" && conf.Server.Auth.PasswordHash == "") {
		warnings = append(warnings, "server.auth is incomplete; the calculator API will reject all logins")
	}
	if conf.Server.Auth.Password != "" && conf.Server.Auth.PasswordHash != "" {
		warnings = append(warnings, "server.auth has both password and passwordHash; the hash takes precedence")
	}

	switch conf.Server.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if conf.Server.Cache.RedisAddress == "" {
			warnings = append(warnings, "server.cache.backend is redis but no redisAddress is set")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("unknown cache backend %q; falling back to memory", conf.Server.Cache.Backend))
	}

	if conf.Loan.StartDate != "" {
		if _, err := datetime.ParseDate(conf.Loan.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("loan.startDate %q is not in %s format", conf.Loan.StartDate, DateTimeLayout))
		}
	}

	return warnings
}
