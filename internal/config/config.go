/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPTHERMO project.
 *
 * HPTHERMO is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/antst/hpthermo/internal/logger"
	"github.com/antst/hpthermo/internal/refrigerant"

	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultMQTTURL      = "tcp://127.0.0.1:1883"
	defaultControlTopic = "hpthermo/control"
	defaultDBFile       = "~/.hpthermo.db"
	defaultConfigFile   = "config.yaml"
	DefaultAverageType  = "mean"
)

// Build-time refrigerant choice, overridden with
// -ldflags "-X github.com/antst/hpthermo/internal/config.defaultRefrigerant=R32".
var (
	defaultRefrigerant = "R410A"
	defaultResolution  = "fine"
)

type Config struct {
	LogLevel        zapcore.Level           `yaml:"log_level"`
	MQTTConfig      *MQTTConfig             `yaml:"mqtt"`
	DBFile          string                  `yaml:"db_file"`
	Refrigerant     refrigerant.Refrigerant `yaml:"refrigerant"`
	TableResolution refrigerant.Resolution  `yaml:"table_resolution"`
	Circuit         *CircuitConfig          `yaml:"circuit"`
}

// BuiltinRefrigerant returns the refrigerant and table resolution selected at build time.
func BuiltinRefrigerant() (refrigerant.Refrigerant, refrigerant.Resolution, error) {
	r, err := refrigerant.Parse(defaultRefrigerant)
	if err != nil {
		return 0, 0, errors.WithMessage(err, "built-in refrigerant")
	}
	res, err := refrigerant.ParseResolution(defaultResolution)
	if err != nil {
		return 0, 0, errors.WithMessage(err, "built-in table resolution")
	}
	return r, res, nil
}

func defConfig() *Config {
	r, res, err := BuiltinRefrigerant()
	if err != nil {
		log.Panic(err)
	}
	return &Config{
		LogLevel:        zapcore.InfoLevel,
		MQTTConfig:      NewMQTTConfig(),
		DBFile:          defaultDBFile,
		Refrigerant:     r,
		TableResolution: res,
		Circuit:         NewCircuitConfig(),
	}
}

func prettyPrint(cfg *Config) {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		logger.L().Error(errors.WithMessage(err, "failed to marshal config for pretty print"))
		return
	}
	logger.L().Debugf("--- Config ---\n%s\n\n", string(d))
}

func (cfg *Config) FillDefaults() {
	if cfg.MQTTConfig == nil {
		cfg.MQTTConfig = NewMQTTConfig()
	}
	cfg.MQTTConfig.FillDefaults()
	if cfg.Circuit == nil {
		cfg.Circuit = NewCircuitConfig()
	}
	cfg.Circuit.FillDefaults()
	if cfg.DBFile == "" {
		cfg.DBFile = defaultDBFile
	}
}

// Properties resolves the configured refrigerant tables.
func (cfg *Config) Properties() (*refrigerant.Properties, error) {
	return refrigerant.Lookup(cfg.Refrigerant, cfg.TableResolution)
}

// Validate checks the settings the service cannot run without.
func (cfg *Config) Validate() error {
	if _, err := cfg.Properties(); err != nil {
		return err
	}
	return cfg.Circuit.Validate()
}

// Load reads configFile over the defaults. A missing file yields the defaults.
func Load(configFile string) (*Config, error) {
	cfg := defConfig()
	if err := readFile(cfg, configFile); err != nil {
		return nil, err
	}
	cfg.FillDefaults()
	return cfg, nil
}

// Get parses the command line, loads the config file and applies the flag
// overrides. Invalid configuration is fatal.
func Get() *Config {
	logLevel := getopt.StringLong("log-level", 'l', "", "log levels: debug, info, warn, error, dpanic, panic, fatal")
	configFile := getopt.StringLong("config", 'c', defaultConfigFile, "config file pathname")
	dbFile := getopt.StringLong("db", 'd', "", "DB file pathname")
	refr := getopt.StringLong("refrigerant", 'r', "", "refrigerant: R410A, R32, R290")
	help := getopt.BoolLong("help", 'h', "display help")

	getopt.Parse()
	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	cfg, err := Load(*configFile)
	if err != nil {
		log.Panicf("GetConfig: %v", err)
	}
	logger.L().Infof("Using config file `%v`", *configFile)

	if *dbFile != "" {
		cfg.DBFile = *dbFile
	}
	logger.L().Infof("Using DB file `%v`", cfg.DBFile)

	if *refr != "" {
		r, err := refrigerant.Parse(*refr)
		if err != nil {
			log.Panicf("GetConfig: %v", err)
		}
		cfg.Refrigerant = r
	}

	if *logLevel != "" {
		if err := cfg.LogLevel.Set(*logLevel); err != nil {
			logger.L().Errorf("Wrong log level `%v`: %v", *logLevel, err)
		}
	}
	logger.SetLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Panicf("GetConfig: %v", err)
	}

	prettyPrint(cfg)

	return cfg
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func readFile(cfg *Config, configFileName string) error {
	if !fileExists(configFileName) {
		return nil
	}

	f, err := os.Open(configFileName)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return nil
}
