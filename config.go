package geoframe

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of conf.toml.
const ConfigEnv = "GEOFRAME_CONFIG"

// Config is the geoframe configuration, read from a TOML file.
type Config struct {
	v *viper.Viper
}

// LoadConfig reads the configuration file at path. If path is empty, conf.toml is read
// from the directory named by the GEOFRAME_CONFIG environment variable.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("ellipsoid.name", "WGS84")
	v.SetDefault("geoid.interpolation", "bilinear")
	v.SetDefault("log.level", "info")
	v.SetDefault("eop.predicted", true)
	if path == "" {
		confPath := os.Getenv(ConfigEnv)
		if confPath == "" {
			return nil, errors.Errorf("environment variable `%s` is missing or empty", ConfigEnv)
		}
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(confPath)
	} else {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "could not read configuration")
	}
	return &Config{v}, nil
}

// Ellipsoid returns the configured reference ellipsoid (WGS84 by default).
func (c *Config) Ellipsoid() (Ellipsoid, error) {
	return EllipsoidFromString(c.v.GetString("ellipsoid.name"))
}

// EOPTable returns a table holding the configured constant Earth orientation parameters,
// or nil if none is set.
func (c *Config) EOPTable() (*EOPTable, error) {
	set := false
	for _, key := range []string{"eop.xp", "eop.yp", "eop.dut1", "eop.lod"} {
		set = set || c.v.IsSet(key)
	}
	if !set {
		return nil, nil
	}
	eop := EOP{
		Xp:   c.v.GetFloat64("eop.xp"),
		Yp:   c.v.GetFloat64("eop.yp"),
		DUT1: c.v.GetFloat64("eop.dut1"),
		LOD:  c.v.GetFloat64("eop.lod"),
	}
	return NewEOPTable([]EOPRecord{{Epoch: J2000, EOP: eop}})
}

// EOPFile returns the path of the IERS finals file, relative to the configuration file.
// It is empty if none is configured.
func (c *Config) EOPFile() string {
	return c.path("eop.file")
}

// EOPPredictions returns whether predicted EOP values of the finals file are used.
func (c *Config) EOPPredictions() bool {
	return c.v.GetBool("eop.predicted")
}

// GridPath returns the path of the geoid grid, relative to the configuration file.
// It is empty if no grid is configured.
func (c *Config) GridPath() string {
	return c.path("geoid.grid")
}

func (c *Config) path(key string) string {
	p := c.v.GetString(key)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.v.ConfigFileUsed()), p)
}

// Interpolation returns the configured geoid interpolation method.
func (c *Config) Interpolation() (Interpolation, error) {
	return InterpolationFromString(c.v.GetString("geoid.interpolation"))
}

// Logger returns a logfmt logger writing to w, filtered at the configured level.
func (c *Config) Logger(w io.Writer) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	var opt level.Option
	switch strings.ToLower(c.v.GetString("log.level")) {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	case "none":
		opt = level.AllowNone()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}
