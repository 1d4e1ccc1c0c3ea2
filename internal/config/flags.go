package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagOrigin   = flag.String("origin", "", "Projection origin as lat,lon")
	flagTerrain  = flag.String("terrain", "", "Terrain sample file (.csv, .xyz or .yaml)")
	flagMapScale = flag.Float64("map-scale", 0, "Map scale applied to road widths")
	flagStrict   = flag.Bool("strict", false, "Abort a layer on the first feature without properties")
	flagNoMerge  = flag.Bool("no-merge", false, "Emit one mesh per feature instead of merged buffers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOrigin != "" {
		lat, lon, err := parseOrigin(*flagOrigin)
		if err != nil {
			return err
		}
		cfg.Projection.OriginLatitude = lat
		cfg.Projection.OriginLongitude = lon
	}
	if *flagTerrain != "" {
		cfg.Terrain.Path = *flagTerrain
	}
	if *flagMapScale > 0 {
		cfg.Render.MapScale = *flagMapScale
	}
	if *flagStrict {
		cfg.Render.Strict = true
	}
	if *flagNoMerge {
		cfg.Buildings.Merge = false
		cfg.Administrative.Merge = false
		cfg.Polygon.Merge = false
		cfg.Water.Merge = false
	}
	return nil
}

// parseOrigin parses "lat,lon".
func parseOrigin(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("origin %q: expected lat,lon", s)
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("origin latitude: %w", err)
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("origin longitude: %w", err)
	}
	return lat, lon, nil
}
