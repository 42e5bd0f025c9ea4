// Command treegen grows a procedural tree skeleton and renders it to an
// image.
//
// Usage:
//
//	treegen [-config tree.yaml] [-seed 7] [-width 800] [-height 600]
//	        [-mode polygon|coverage] [-workers 4] [-output tree.png] [-v]
//
// Flags override the values read from the configuration file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/geom"
	"github.com/gogpu/treegen/growth"
	"github.com/gogpu/treegen/internal/config"
	"github.com/gogpu/treegen/render"
	"github.com/gogpu/treegen/skeleton"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		seed       = flag.Uint64("seed", 0, "random seed")
		width      = flag.Int("width", 0, "image width")
		height     = flag.Int("height", 0, "image height")
		output     = flag.String("output", "", "output file (.png or .bmp)")
		workers    = flag.Int("workers", 0, "worker goroutines, 0 for GOMAXPROCS")
		mode       = flag.String("mode", "", "renderer: polygon or coverage")
		verbose    = flag.Bool("v", false, "log growth diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	treegen.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("treegen: load config", "err", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Canvas.Width = *width
		case "height":
			cfg.Canvas.Height = *height
		case "output":
			cfg.Output = *output
		case "workers":
			cfg.Workers = *workers
		case "mode":
			cfg.Canvas.Mode = *mode
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("treegen: invalid flags", "err", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logger.Error("treegen: failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(path)
}

func run(cfg *config.Config) error {
	bounds := geom.RectFromBounds(0, 0, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	tree, err := growth.Run(skeleton.NewTree(skeleton.WithBounds(bounds)),
		growth.Bind[growth.TrunkParams](
			growth.NewTrunkLayer(growth.WithSeed(cfg.Seed), growth.WithWorkers(cfg.Workers)),
			cfg.Trunk),
		growth.Bind[growth.BranchParams](
			growth.NewBranchLayer(growth.WithSeed(cfg.Seed+1)),
			cfg.Branch),
	)
	if err != nil {
		return fmt.Errorf("grow: %w", err)
	}

	opts := []render.Option{
		render.WithBackground(cfg.BackgroundColor()),
		render.WithSupersample(cfg.Canvas.Supersample),
		render.WithWorkers(cfg.Workers),
	}
	var r render.Renderer = render.NewPolygonRenderer(opts...)
	if cfg.Canvas.Mode == config.ModeCoverage {
		r = render.NewCoverageRenderer(opts...)
	}
	canvas := r.Render(tree)

	if cfg.Canvas.Caption {
		if err := render.NewCaption(render.RunCaption(cfg.Seed, tree.Len())).Draw(canvas); err != nil {
			return err
		}
	}

	if err := canvas.Save(cfg.Output); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	treegen.Logger().Info("treegen: saved",
		"output", cfg.Output, "nodes", tree.Len(),
		"width", canvas.Width(), "height", canvas.Height(),
		"unindexed", tree.Graph().Unindexed())
	return nil
}
