package config

import (
	"fmt"
	"path/filepath"
	"time"

	"TermPong/core"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the runtime configuration of the terminal game.
type Config struct {
	Env          string
	ConfigFile   string
	LoggerConfig string

	TickRate   int
	CellWidth  float64
	CellHeight float64
	KeyHold    time.Duration
	FinalScore int

	// Keys maps each control to a key spec such as "w", "space" or "up".
	Keys    map[core.Control]string
	QuitKey string
}

var keyProperties = map[core.Control]string{
	core.Serve:  "SERVE_KEY",
	core.P1Up:   "P1_UP_KEY",
	core.P1Down: "P1_DOWN_KEY",
	core.P2Up:   "P2_UP_KEY",
	core.P2Down: "P2_DOWN_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TICK_RATE", 60)
	v.SetDefault("CELL_WIDTH", 10)
	v.SetDefault("CELL_HEIGHT", 20)
	v.SetDefault("KEY_HOLD_MS", 600)
	v.SetDefault("FINAL_SCORE", 0)
	v.SetDefault("SERVE_KEY", "space")
	v.SetDefault("P1_UP_KEY", "w")
	v.SetDefault("P1_DOWN_KEY", "s")
	v.SetDefault("P2_UP_KEY", "up")
	v.SetDefault("P2_DOWN_KEY", "down")
	v.SetDefault("QUIT_KEY", "esc")
}

// Load parses args and reads properties/<env>.properties. Flags given on the
// command line override values from the file.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	env := fs.String("env", "local", "properties file name without extension")
	dir := fs.String("config-dir", "properties", "directory holding <env>.properties")
	loggerConfig := fs.String("logger-config", "logger.properties", "logger properties file")
	fs.Int("tick-rate", 60, "simulation ticks per second")
	fs.Int("final-score", 0, "score that ends the match, 0 for endless")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(*env)
	v.SetConfigType("properties")
	v.AddConfigPath(*dir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", filepath.Join(*dir, *env+".properties"), err)
	}

	if fs.Changed("tick-rate") {
		if err := v.BindPFlag("TICK_RATE", fs.Lookup("tick-rate")); err != nil {
			return nil, err
		}
	}
	if fs.Changed("final-score") {
		if err := v.BindPFlag("FINAL_SCORE", fs.Lookup("final-score")); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Env:          *env,
		ConfigFile:   v.ConfigFileUsed(),
		LoggerConfig: *loggerConfig,
		TickRate:     cast.ToInt(v.Get("TICK_RATE")),
		CellWidth:    cast.ToFloat64(v.Get("CELL_WIDTH")),
		CellHeight:   cast.ToFloat64(v.Get("CELL_HEIGHT")),
		KeyHold:      time.Duration(cast.ToInt(v.Get("KEY_HOLD_MS"))) * time.Millisecond,
		FinalScore:   cast.ToInt(v.Get("FINAL_SCORE")),
		Keys:         make(map[core.Control]string, len(keyProperties)),
		QuitKey:      cast.ToString(v.Get("QUIT_KEY")),
	}
	for control, key := range keyProperties {
		cfg.Keys[control] = cast.ToString(v.Get(key))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// maxTickRate keeps TickInterval at or above one millisecond.
const maxTickRate = 1000

func (c *Config) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("TICK_RATE must be positive, got %d", c.TickRate)
	}
	if c.TickRate > maxTickRate {
		return fmt.Errorf("TICK_RATE must be at most %d, got %d", maxTickRate, c.TickRate)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("CELL_WIDTH and CELL_HEIGHT must be positive, got %v x %v", c.CellWidth, c.CellHeight)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("KEY_HOLD_MS must be positive, got %v", c.KeyHold)
	}
	return nil
}

// TickInterval is the wall-clock time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
