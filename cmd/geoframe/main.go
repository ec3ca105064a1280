package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ChristopherRabotin/geoframe"
	"github.com/go-kit/kit/log/level"
)

var (
	confPath  string
	frameName string
	epoch     string
	station   string
)

func init() {
	flag.StringVar(&confPath, "config", "", "configuration TOML file (defaults to $GEOFRAME_CONFIG/conf.toml)")
	flag.StringVar(&frameName, "frame", "lla", "frame of the input components: ecef, eci or lla")
	flag.StringVar(&epoch, "epoch", time.Now().UTC().Format(time.RFC3339), "RFC 3339 epoch of the coordinate")
	flag.StringVar(&station, "station", "", "built-in station (dss13, dss34, dss65) to compute look angles from")
}

func main() {
	flag.Parse()
	if flag.NArg() != 3 {
		log.Fatalf("expected three components, got %d", flag.NArg())
	}
	conf, err := geoframe.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("%s", err)
	}
	logger := conf.Logger(os.Stderr)

	ell, err := conf.Ellipsoid()
	if err != nil {
		log.Fatalf("%s", err)
	}
	eop, err := conf.EOPTable()
	if err != nil {
		log.Fatalf("%s", err)
	}
	if eopPath := conf.EOPFile(); eopPath != "" {
		if eop, err = loadEOPFile(eopPath, conf.EOPPredictions()); err != nil {
			log.Fatalf("%s: %s", eopPath, err)
		}
		level.Debug(logger).Log("msg", "loaded EOP", "file", eopPath, "records", eop.Len())
	}
	tt, err := geoframe.ParseTerrestrialTime(epoch)
	if err != nil {
		log.Fatalf("%s", err)
	}

	var vals [3]float64
	for i := 0; i < 3; i++ {
		if vals[i], err = strconv.ParseFloat(flag.Arg(i), 64); err != nil {
			log.Fatalf("component %d: %s", i+1, err)
		}
	}

	var c geoframe.Coordinate
	switch strings.ToLower(frameName) {
	case "ecef":
		c = geoframe.NewECEF(vals[0], vals[1], vals[2], ell, tt)
	case "eci":
		c = geoframe.NewECI(vals[0], vals[1], vals[2], ell, tt)
	case "lla":
		if c, err = geoframe.NewLLA(vals[0], vals[1], vals[2], ell, tt); err != nil {
			log.Fatalf("%s", err)
		}
	default:
		log.Fatalf("unknown frame `%s`", frameName)
	}
	c = c.WithEOP(eop)
	level.Info(logger).Log("msg", "converting", "coordinate", c, "epoch", tt, "eop", eop.At(tt.Time()))

	for _, f := range []geoframe.Frame{geoframe.ECEF, geoframe.ECI, geoframe.LLA} {
		out, err := c.To(f)
		if err != nil {
			log.Fatalf("%s: %s", f, err)
		}
		fmt.Println(out)
	}
	fmt.Printf("|r| = %.4f m\n", c.Magnitude())

	if gridPath := conf.GridPath(); gridPath != "" {
		method, err := conf.Interpolation()
		if err != nil {
			log.Fatalf("%s", err)
		}
		grid, err := loadGridFile(gridPath)
		if err != nil {
			log.Fatalf("%s: %s", gridPath, err)
		}
		model, err := geoframe.NewGeoidModel(grid, ell, geoframe.WithInterpolation(method), geoframe.WithLogger(logger))
		if err != nil {
			log.Fatalf("%s", err)
		}
		N, err := model.Undulation(c)
		if err != nil {
			level.Warn(logger).Log("msg", "no geoid undulation", "err", err)
		} else if H, err := model.OrthometricHeight(c); err != nil {
			level.Warn(logger).Log("msg", "no orthometric height", "err", err)
		} else {
			fmt.Printf("N = %.4f m\tH = %.4f m\n", N, H)
		}
	}

	if station != "" {
		st, err := geoframe.StationFromName(station)
		if err != nil {
			log.Fatalf("%s", err)
		}
		ρ, el, az, err := st.RangeElAz(c)
		if err != nil {
			log.Fatalf("%s", err)
		}
		visible := el >= st.Elevation
		fmt.Printf("%s: ρ = %.3f m\tel = %.6f deg\taz = %.6f deg\tvisible = %t\n", st.Name, ρ, el, az, visible)
	}
}
