// Package config loads a mixer.Config from defaults, an optional file and the
// environment, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	mixer "github.com/chessmixer"
)

// EnvPrefix prefixes every environment override, e.g. CHESSMIXER_SEARCH_DEPTH.
const EnvPrefix = "CHESSMIXER"

func setDefaults(v *viper.Viper, conf mixer.Config) {
	v.SetDefault("name", conf.Name)
	v.SetDefault("log_level", conf.LogLevel)

	v.SetDefault("search.algorithm", conf.SearchConf.Algorithm)
	v.SetDefault("search.depth", conf.SearchConf.Depth)
	v.SetDefault("search.decisive_score", conf.SearchConf.DecisiveScore)

	pv := conf.ScoreConf.PieceValues
	v.SetDefault("score.function", conf.ScoreConf.Function)
	v.SetDefault("score.piece_values.pawn", pv.Pawn)
	v.SetDefault("score.piece_values.knight", pv.Knight)
	v.SetDefault("score.piece_values.bishop", pv.Bishop)
	v.SetDefault("score.piece_values.rook", pv.Rook)
	v.SetDefault("score.piece_values.queen", pv.Queen)

	v.SetDefault("chooser.policy", conf.ChooserConf.Policy)
	v.SetDefault("chooser.seed", conf.ChooserConf.Seed)

	v.SetDefault("arena.games", conf.ArenaConf.Games)
	v.SetDefault("arena.concurrency", conf.ArenaConf.Concurrency)
	v.SetDefault("arena.max_plies", conf.ArenaConf.MaxPlies)
	v.SetDefault("arena.start_fen", conf.ArenaConf.StartFEN)
}

// Load reads the configuration. path may be empty, in which case only the
// defaults and the environment are used. The file format follows the
// extension (yaml, json, toml, ...). The result is validated.
func Load(path string) (mixer.Config, error) {
	v := viper.New()
	setDefaults(v, mixer.DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return mixer.Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var conf mixer.Config
	if err := v.Unmarshal(&conf); err != nil {
		return mixer.Config{}, errors.Wrap(err, "decoding config")
	}
	if err := conf.Validate(); err != nil {
		return mixer.Config{}, errors.WithMessage(err, "invalid config")
	}
	return conf, nil
}

// SetupLogging applies the configured log level globally.
func SetupLogging(conf mixer.Config) error {
	lvl, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log_level")
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
