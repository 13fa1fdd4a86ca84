package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses the command line, renders the selected scene and writes it out
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.SetOutput(stdout)

	configPath := fs.String("config", "", "TOML render configuration file")
	sceneName := fs.String("scene", "", "Built-in scene name (see -list)")
	width := fs.Int("width", 0, "Image width in pixels")
	height := fs.Int("height", 0, "Image height in pixels")
	output := fs.String("out", "", "Output PNG file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	background := fs.String("background", "", "Background colour as r,g,b")
	ambient := fs.String("ambient", "", "Ambient light as r,g,b")
	texture := fs.String("texture", "", "Image file applied to a scene material")
	textureMaterial := fs.Int("texture-material", 0, "Index of the material that receives -texture")
	list := fs.Bool("list", false, "List the built-in scenes and exit")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Fprintln(stdout, "Ray Caster")
		fmt.Fprintln(stdout, "Usage: raycaster [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
		fmt.Fprint(stdout, config.Help)
		return nil
	}

	if *list {
		for _, info := range scene.List() {
			fmt.Fprintf(stdout, "  %-12s %s\n", info.ID, info.Description)
		}
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Flags given explicitly win over the file
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "out":
			cfg.Output = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		case "texture":
			cfg.Texture = *texture
		case "texture-material":
			cfg.TextureMaterial = *textureMaterial
		case "background":
			c, err := parseColor(*background)
			if err != nil && flagErr == nil {
				flagErr = fmt.Errorf("invalid -background: %w", err)
			}
			cfg.Background = &c
		case "ambient":
			c, err := parseColor(*ambient)
			if err != nil && flagErr == nil {
				flagErr = fmt.Errorf("invalid -ambient: %w", err)
			}
			cfg.Ambient = &c
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := core.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return render(cfg, logger, stdout)
}

func render(cfg config.RenderConfig, logger *zap.Logger, stdout io.Writer) error {
	s, err := scene.Create(cfg.Scene, logger)
	if err != nil {
		return err
	}
	cfg.Apply(s)

	if cfg.Texture != "" {
		if _, err := s.LoadTexture(cfg.TextureMaterial, cfg.Texture, logger); err != nil {
			return fmt.Errorf("cannot apply texture: %w", err)
		}
	}

	fb, stats, err := renderer.NewRaytracer(s, cfg.Width, cfg.Height, logger).Render()
	if err != nil {
		return err
	}

	if err := loaders.SavePNG(cfg.Output, fb.Image()); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rendered %s (%dx%d) in %v: %d of %d pixels hit\n",
		cfg.Scene, cfg.Width, cfg.Height, stats.Duration, stats.HitPixels, stats.TotalPixels)
	fmt.Fprintf(stdout, "Render saved as %s\n", cfg.Output)
	return nil
}

// parseColor parses "r,g,b" into a colour
func parseColor(value string) ([3]float64, error) {
	var c [3]float64
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return c, fmt.Errorf("expected r,g,b, got %q", value)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return c, fmt.Errorf("invalid component %q", p)
		}
		c[i] = v
	}
	return c, nil
}
