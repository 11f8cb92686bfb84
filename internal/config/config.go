// Package config loads engine tuning and time-control defaults from a
// config file and environment, generalizing the teacher's hardcoded
// game/ai/search/params.go constants into something an operator can
// override without a rebuild.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/nkastor/chesscore/engine"
)

// Config is the top-level configuration surface for chesscore binaries.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
}

// EngineConfig mirrors engine.Tuning plus the knobs the façade needs but
// the core itself treats as caller-supplied (TT size, default variant).
type EngineConfig struct {
	TTSize            int    `mapstructure:"tt_size"`
	NullMoveMinDepth  int    `mapstructure:"null_move_min_depth"`
	NullMoveMinPieces int    `mapstructure:"null_move_min_pieces"`
	LMRMinMoveIndex   int    `mapstructure:"lmr_min_move_index"`
	LMRMinDepth       int    `mapstructure:"lmr_min_depth"`
	DefaultVariant    string `mapstructure:"default_variant"`
}

// Default returns the configuration matching spec.md's literal constants,
// used when no config file is present.
func Default() Config {
	t := engine.DefaultTuning()
	return Config{Engine: EngineConfig{
		TTSize:            1_000_000,
		NullMoveMinDepth:  t.NullMoveMinDepth,
		NullMoveMinPieces: t.NullMoveMinPieces,
		LMRMinMoveIndex:   t.LMRMinMoveIndex,
		LMRMinDepth:       t.LMRMinDepth,
		DefaultVariant:    string(engine.Standard),
	}}
}

// Load reads configuration from configPath (if non-empty) and from
// CHESSCORE_-prefixed environment variables, falling back to Default()
// for anything unset.
func Load(configPath string) (Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("engine.tt_size", def.Engine.TTSize)
	v.SetDefault("engine.null_move_min_depth", def.Engine.NullMoveMinDepth)
	v.SetDefault("engine.null_move_min_pieces", def.Engine.NullMoveMinPieces)
	v.SetDefault("engine.lmr_min_move_index", def.Engine.LMRMinMoveIndex)
	v.SetDefault("engine.lmr_min_depth", def.Engine.LMRMinDepth)
	v.SetDefault("engine.default_variant", def.Engine.DefaultVariant)

	v.SetEnvPrefix("CHESSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "loading config from %s", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshalling config")
	}
	return cfg, nil
}

// Tuning converts EngineConfig into an engine.Tuning.
func (c EngineConfig) Tuning() engine.Tuning {
	return engine.Tuning{
		NullMoveMinDepth:  c.NullMoveMinDepth,
		NullMoveMinPieces: c.NullMoveMinPieces,
		LMRMinMoveIndex:   c.LMRMinMoveIndex,
		LMRMinDepth:       c.LMRMinDepth,
	}
}
