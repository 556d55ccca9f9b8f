package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evofsm/evofsm"
	"github.com/evofsm/evofsm/internal/logging"
	"github.com/evofsm/evofsm/pkg/domain"
)

// AlphabetConfig names the glyphs of the working alphabet: input symbols
// first, then blanks.
type AlphabetConfig struct {
	Input string `yaml:"input"`
	Blank string `yaml:"blank"`
}

// Config is the engine configuration file (YAML).
type Config struct {
	Rates           domain.MutationRates `yaml:"rates"`
	MaxStates       int                  `yaml:"max_states"`
	AllowEmptyFinal bool                 `yaml:"allow_empty_final"`
	Alphabet        AlphabetConfig       `yaml:"alphabet"`
}

// defaultConfig mirrors the engine defaults.
func defaultConfig() Config {
	return Config{
		Rates:           domain.DefaultRates(),
		MaxStates:       3,
		AllowEmptyFinal: true,
		Alphabet:        AlphabetConfig{Input: "01"},
	}
}

// loadConfig reads the config file. A missing path or file yields defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// buildEngine assembles an engine from the persistent flags of a command.
func buildEngine(cmd *cobra.Command) (*evofsm.Engine, Config, error) {
	path, _ := cmd.Flags().GetString("config")
	seed, _ := cmd.Flags().GetUint64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := loadConfig(path)
	if err != nil {
		return nil, cfg, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	var rng domain.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	eng := evofsm.New(domain.NewAlphabet(cfg.Alphabet.Input, cfg.Alphabet.Blank),
		evofsm.WithRates(cfg.Rates),
		evofsm.WithMaxStates(cfg.MaxStates),
		evofsm.WithAllowEmptyFinalStates(cfg.AllowEmptyFinal),
		evofsm.WithRand(rng),
		evofsm.WithLogger(logger),
	)
	return eng, cfg, nil
}
