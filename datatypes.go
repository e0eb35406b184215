package mixer

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chessmixer/choose"
	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
	"github.com/chessmixer/search"
)

// Config for an agent and the arena it plays in.
// It holds the choice of search, scoring and selection strategies
// as well as settings for engine-vs-engine matches.
type Config struct {
	Name        string        `json:"name" mapstructure:"name"`
	LogLevel    string        `json:"log_level" mapstructure:"log_level"`
	SearchConf  search.Config `json:"search" mapstructure:"search"`
	ScoreConf   score.Config  `json:"score" mapstructure:"score"`
	ChooserConf choose.Config `json:"chooser" mapstructure:"chooser"`
	ArenaConf   ArenaConfig   `json:"arena" mapstructure:"arena"`
}

// ArenaConfig configures a match between two agents.
type ArenaConfig struct {
	Games       int    `json:"games" mapstructure:"games"`
	Concurrency int    `json:"concurrency" mapstructure:"concurrency"` // games played at once
	MaxPlies    int    `json:"max_plies" mapstructure:"max_plies"`     // adjudicated a draw after this many plies
	StartFEN    string `json:"start_fen" mapstructure:"start_fen"`
}

func DefaultConfig() Config {
	return Config{
		Name:        "Mixer",
		LogLevel:    "info",
		SearchConf:  search.DefaultConfig(),
		ScoreConf:   score.DefaultConfig(),
		ChooserConf: choose.DefaultConfig(),
		ArenaConf:   DefaultArenaConfig(),
	}
}

func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Games:       2,
		Concurrency: 1,
		MaxPlies:    200,
		StartFEN:    game.StartFEN,
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs error
	if c.Name == "" {
		errs = multierror.Append(errs, errors.New("name must not be empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "log_level"))
	}
	if _, ok := Evaluators[c.SearchConf.Algorithm]; !ok {
		errs = multierror.Append(errs, errors.Errorf("unknown search algorithm %q", c.SearchConf.Algorithm))
	}
	if _, ok := Scorers[c.ScoreConf.Function]; !ok {
		errs = multierror.Append(errs, errors.Errorf("unknown score function %q", c.ScoreConf.Function))
	}
	if _, ok := Choosers[c.ChooserConf.Policy]; !ok {
		errs = multierror.Append(errs, errors.Errorf("unknown chooser policy %q", c.ChooserConf.Policy))
	}
	if err := c.ScoreConf.PieceValues.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := c.SearchConf.Validate(c.ScoreConf.PieceValues); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := c.ArenaConf.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func (c ArenaConfig) Validate() error {
	var errs error
	if c.Games < 1 {
		errs = multierror.Append(errs, errors.Errorf("arena games must be at least 1, got %d", c.Games))
	}
	if c.Concurrency < 1 {
		errs = multierror.Append(errs, errors.Errorf("arena concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.MaxPlies < 1 {
		errs = multierror.Append(errs, errors.Errorf("arena max plies must be at least 1, got %d", c.MaxPlies))
	}
	if _, err := game.FromFEN(c.StartFEN); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "arena start position"))
	}
	return errs
}
