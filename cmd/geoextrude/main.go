// geoextrude turns GeoJSON and FlatGeobuf map features into 3D geometry.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geo/internal/config"
	"github.com/Faultbox/midgard-geo/internal/engine/scene"
	"github.com/Faultbox/midgard-geo/internal/export/obj"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/geo/source"
	"github.com/Faultbox/midgard-geo/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		err = cmdInfo(rest)
	case "build", "b":
		err = cmdBuild(cfg, rest)
	case "pick":
		err = cmdPick(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`geoextrude - extrude map features into 3D geometry

Usage:
  geoextrude [global options] <command> [options]

Commands:
  info <input>                         Show feature counts and file header
  build [-layers list] <input> <out>   Generate layers and write a Wavefront OBJ
  pick [-layers list] <input> <lat> <lon>
                                       Report the object under a coordinate

Global options:
  -config <file>      Config file (default ./geoextrude.yaml)
  -origin <lat,lon>   Projection origin
  -terrain <file>     Terrain samples (.csv, .xyz, .yaml)
  -map-scale <n>      Road width multiplier
  -strict             Fail on features without properties
  -no-merge           One mesh per feature
  -debug              Debug logging

Examples:
  geoextrude info city.geojson
  geoextrude -origin 52.37,4.89 build -layers buildings,roads city.fgb city.obj
  geoextrude pick city.geojson 52.3702 4.8952`)
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: geoextrude info <input>")
	}
	path := args[0]
	c, err := source.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("File:     %s (%s)\n", path, source.DetectFormat(path))
	fmt.Printf("Features: %d\n", c.Len())
	if source.DetectFormat(path) == source.FormatFlatGeobuf {
		if h, err := source.ReadHeader(path); err == nil {
			fmt.Printf("Layer:    %s (%s)\n", h.Name, h.GeometryType)
			fmt.Printf("Envelope: %v - %v\n", h.Envelope.Min, h.Envelope.Max)
			fmt.Printf("Columns:  %d\n", len(h.Columns))
		}
	}

	fmt.Println()
	fmt.Println("Geometry types:")
	counts := c.CountByType()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		name := t
		if name == "" {
			name = "(none)"
		}
		fmt.Printf("  %-16s %d\n", name, counts[t])
	}

	var buildings, roads, water, bare int
	for _, f := range c.Features {
		switch {
		case !f.HasProperties():
			bare++
		case feature.IsBuilding(f.Properties):
			buildings++
		case feature.IsRenderableRoad(f.Properties):
			roads++
		case feature.IsWater(f.Properties):
			water++
		}
	}
	fmt.Println()
	fmt.Println("Classes:")
	fmt.Printf("  %-16s %d\n", "buildings", buildings)
	fmt.Printf("  %-16s %d\n", "roads", roads)
	fmt.Printf("  %-16s %d\n", "water", water)
	fmt.Printf("  %-16s %d\n", "no properties", bare)
	return nil
}

func cmdBuild(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	layers := fs.String("layers", "", "Comma separated generators (buildings,administrative,polygon,roads,water,all)")
	colliders := fs.Bool("colliders", false, "Append collider wireframes")
	hidden := fs.Bool("hidden", false, "Include invisible meshes")
	fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: geoextrude build [-layers list] <input> <output.obj>")
	}
	s, err := buildScene(cfg, fs.Arg(0), *layers)
	if err != nil {
		return err
	}
	defer s.Close()

	out := fs.Arg(1)
	var total obj.Summary
	for i, l := range s.Layers() {
		path := out
		if i < len(s.Layers())-1 {
			path = strings.TrimSuffix(out, filepath.Ext(out)) + "_" + l.Name() + filepath.Ext(out)
		}
		sum, err := obj.WriteFile(path, l, obj.Options{Hidden: *hidden, Colliders: *colliders})
		if err != nil {
			return err
		}
		logger.Debug("layer written",
			zap.String("layer", l.Name()),
			zap.String("path", path),
			zap.Int("vertices", sum.Vertices),
			zap.Int("faces", sum.Faces),
		)
		total.Objects += sum.Objects
		total.Vertices += sum.Vertices
		total.Faces += sum.Faces
		total.Lines += sum.Lines
		fmt.Printf("Wrote %s\n", path)
	}
	fmt.Printf("Objects: %d  Vertices: %d  Faces: %d  Lines: %d\n",
		total.Objects, total.Vertices, total.Faces, total.Lines)
	return nil
}

func cmdPick(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	layers := fs.String("layers", "buildings", "Comma separated generators")
	fs.Parse(args)

	if fs.NArg() < 3 {
		return fmt.Errorf("usage: geoextrude pick <input> <lat> <lon>")
	}
	lat, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(fs.Arg(2), 64)
	if err != nil {
		return fmt.Errorf("longitude: %w", err)
	}

	// Picking tests colliders, which only exist for merged geometry.
	cfg.Buildings.Merge, cfg.Buildings.Collider = true, true
	cfg.Administrative.Merge, cfg.Administrative.Collider = true, true

	s, err := buildScene(cfg, fs.Arg(0), *layers)
	if err != nil {
		return err
	}
	defer s.Close()

	hit, ok := s.PickLatLon(lat, lon)
	if !ok {
		fmt.Println("Nothing at that position")
		return nil
	}
	fmt.Printf("Object:   %s\n", hit.Object.Name())
	fmt.Printf("Distance: %.3f\n", hit.Distance)
	keys := make([]string, 0, len(hit.Object.Info))
	for k := range hit.Object.Info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %v\n", k, hit.Object.Info[k])
	}
	return nil
}

func buildScene(cfg *config.Config, input, layers string) (*scene.Scene, error) {
	kinds, err := scene.ParseKinds(layers)
	if err != nil {
		return nil, err
	}
	c, err := source.Load(input)
	if err != nil {
		return nil, err
	}
	logger.Sugar.Debugf("loaded %d features from %s", c.Len(), input)
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	s, err := scene.New(cfg, name, c)
	if err != nil {
		return nil, err
	}
	if err := s.Build(kinds); err != nil {
		s.Close()
		return nil, err
	}
	for k, skipped := range s.Skipped {
		logger.Warn("features skipped", zap.String("layer", string(k)), zap.Int("count", len(multierr.Errors(skipped))))
	}
	logger.Info("scene built", zap.String("name", name), zap.Int("kinds", len(kinds)), zap.Int("layers", len(s.Layers())))
	return s, nil
}
