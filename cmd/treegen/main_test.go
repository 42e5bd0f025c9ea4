package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/treegen/internal/config"
)

func TestRun(t *testing.T) {
	for _, mode := range []string{config.ModePolygon, config.ModeCoverage} {
		t.Run(mode, func(t *testing.T) {
			cfg := config.Default()
			cfg.Canvas.Width, cfg.Canvas.Height = 160, 120
			cfg.Canvas.Mode = mode
			cfg.Workers = 2
			cfg.Output = filepath.Join(t.TempDir(), "tree.png")
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}

			if err := run(&cfg); err != nil {
				t.Fatalf("run() returned error: %v", err)
			}

			f, err := os.Open(cfg.Output)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
				t.Errorf("image bounds = %v, want 160x120", b)
			}
		})
	}
}

func TestLoadConfig_DefaultWithoutPath(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != config.Default().Output {
		t.Errorf("Output = %q, want the default", cfg.Output)
	}
}
