// Package main provides the CLI entry point for mockshot.
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mockshot/pkg/adapters/filesink"
	"github.com/user/mockshot/pkg/adapters/imageproc"
	"github.com/user/mockshot/pkg/adapters/logger"
	"github.com/user/mockshot/pkg/adapters/nullsink"
	"github.com/user/mockshot/pkg/adapters/osfilesystem"
	"github.com/user/mockshot/pkg/canvaspool"
	"github.com/user/mockshot/pkg/config"
	"github.com/user/mockshot/pkg/fonts"
	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/orchestrator"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/ports"
	"github.com/user/mockshot/pkg/stages/background"
	"github.com/user/mockshot/pkg/stages/layout"
	"github.com/user/mockshot/pkg/stages/render"
	"github.com/user/mockshot/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:        "mockshot",
		Usage:       l10n.T("Compose screenshots into styled mockup images"),
		Description: l10n.T("mockshot places images on styled backgrounds with device frames, shadows and text."),
		Version:     version,
		Commands: []*cli.Command{
			renderCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       l10n.T("Show version information"),
		Description: l10n.T("Display the version of mockshot."),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("mockshot version %s", version))
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:        "render",
		Usage:       l10n.T("Render images into styled mockups"),
		Description: l10n.T("Render one or more images with a background, frame, shadow and text overlays."),
		ArgsUsage:   "<image> [image...]",
		Flags:       renderFlags(),
		Action:      runRender,
	}
}

func renderFlags() []cli.Flag {
	output := l10n.T("Output")
	layoutCat := l10n.T("Layout and Frame")
	bg := l10n.T("Background")
	style := l10n.T("Shadow and Text")
	encoding := l10n.T("Encoding")
	debug := l10n.T("Debug")
	logging := l10n.T("Logging")

	return []cli.Flag{
		// Output
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: output,
			Usage: l10n.T("Output file path (a directory when rendering several images)")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: output,
			Usage: l10n.T("YAML style configuration file")},
		&cli.StringFlag{Name: "summary", Category: output,
			Usage: l10n.T("Output execution summary to file (Markdown format)")},

		// Layout
		&cli.StringFlag{Name: "frame", Aliases: []string{"f"}, Category: layoutCat,
			Usage: l10n.T("Frame (none, browser, macos, windows, iphone, android)")},
		&cli.IntFlag{Name: "padding", Aliases: []string{"p"}, Category: layoutCat,
			Usage: l10n.T("Padding around the content in pixels (default: 64)")},
		&cli.Float64Flag{Name: "zoom", Aliases: []string{"z"}, Category: layoutCat,
			Usage: l10n.T("Image scale factor (default: 1)")},
		&cli.Float64Flag{Name: "radius", Aliases: []string{"r"}, Category: layoutCat,
			Usage: l10n.T("Corner radius in pixels (default: 12)")},
		&cli.Float64Flag{Name: "rotation", Category: layoutCat,
			Usage: l10n.T("Content rotation in degrees")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Category: layoutCat,
			Usage: l10n.T("Fixed output width (requires --height)")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Category: layoutCat,
			Usage: l10n.T("Fixed output height (requires --width)")},

		// Background
		&cli.StringFlag{Name: "background", Aliases: []string{"b"}, Category: bg,
			Usage: l10n.T("Background (solid, gradient, mesh, textPattern, waveSplit, logoPattern, transparent)")},
		&cli.StringFlag{Name: "color", Category: bg,
			Usage: l10n.T("Solid background color (hex, e.g., #ffffff)")},
		&cli.StringFlag{Name: "gradient-from", Category: bg,
			Usage: l10n.T("Gradient start color (hex)")},
		&cli.StringFlag{Name: "gradient-to", Category: bg,
			Usage: l10n.T("Gradient end color (hex)")},
		&cli.Float64Flag{Name: "gradient-angle", Category: bg,
			Usage: l10n.T("Gradient angle in degrees (default: 135)")},
		&cli.StringFlag{Name: "mesh", Category: bg,
			Usage: l10n.T("Mesh radial-gradient CSS")},
		&cli.StringFlag{Name: "pattern-text", Category: bg,
			Usage: l10n.T("Text for the textPattern background")},
		&cli.StringFlag{Name: "logo", Category: bg,
			Usage: l10n.T("Logo image for the logoPattern background")},

		// Shadow and text
		&cli.Float64Flag{Name: "shadow-blur", Category: style,
			Usage: l10n.T("Shadow blur radius in pixels (default: 20)")},
		&cli.Float64Flag{Name: "shadow-opacity", Category: style,
			Usage: l10n.T("Shadow opacity (0-100, default: 30)")},
		&cli.StringSliceFlag{Name: "text", Aliases: []string{"t"}, Category: style,
			Usage: l10n.T("Text overlay; repeat to stack lines from the top")},
		&cli.StringSliceFlag{Name: "font-file", Category: style,
			Usage: l10n.T("Register a TrueType font as family[:bold]=path")},

		// Encoding
		&cli.StringFlag{Name: "format", Category: encoding,
			Usage: l10n.T("Output format (png, jpeg, webp; default: from extension)")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Category: encoding,
			Usage: l10n.T("JPEG/WebP quality (1-100, default: 90)")},
		&cli.IntFlag{Name: "workers", Category: encoding,
			Usage: l10n.T("Number of images rendered concurrently (default: 4)")},

		// Debug
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Category: debug,
			Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Category: debug, Value: "./debug",
			Usage: l10n.T("Directory for debug output")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Category: logging, Value: "info",
			Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: logging,
			Usage: l10n.T("Suppress all log output")},
	}
}

func runRender(c *cli.Context) error {
	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("%s", l10n.T("Image argument is required"))
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Build config from file and flag overrides
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	// Create adapters
	fs := osfilesystem.New()
	processor := imageproc.New()

	if err := registerFonts(fs, c.StringSlice("font-file")); err != nil {
		return err
	}

	style, err := loadStyle(cfg, fs, processor)
	if err != nil {
		return err
	}

	format, err := imageproc.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, processor)
	} else {
		sink = nullsink.New()
	}

	// Create shared resources
	cache := framegeom.New()
	pool := canvaspool.New(canvaspool.WithLogger(log))
	defer pool.Destroy()
	painter := background.NewPainter(
		background.WithPool(pool),
		background.WithFonts(fonts.Default()),
		background.WithLogger(log),
	)

	// Create stages
	layoutStage := layout.NewStage(cache)
	renderStage := render.NewStage(cache, pool, painter, processor, sink, log)

	// Create orchestrator
	orch := orchestrator.New(
		layoutStage,
		renderStage,
		processor,
		imageproc.FormatFromPath,
		fs,
		sink,
		log,
	)

	orchConfig := orchestrator.Config{
		Jobs:    buildJobs(inputs, cfg.Output, format),
		Style:   style,
		Format:  format,
		Quality: cfg.Quality,
		Workers: cfg.Workers,
	}

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(fs, path, cfg, result); err != nil {
			log.Error("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	return nil
}

// buildConfig loads the config file, if any, and applies flag overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	builder := config.From(cfg)

	if c.IsSet("output") {
		builder.WithOutput(c.String("output"))
	}
	if c.IsSet("frame") {
		builder.WithFrame(c.String("frame"))
	}
	if c.IsSet("padding") {
		builder.WithPadding(c.Int("padding"))
	}
	if c.IsSet("zoom") {
		builder.WithZoom(c.Float64("zoom"))
	}
	if c.IsSet("radius") {
		builder.WithBorderRadius(c.Float64("radius"))
	}
	if c.IsSet("rotation") {
		builder.WithRotation(c.Float64("rotation"))
	}
	if c.IsSet("width") || c.IsSet("height") {
		builder.WithOutputSize(c.Int("width"), c.Int("height"))
	}

	if c.IsSet("background") {
		builder.WithBackground(c.String("background"))
	}
	if c.IsSet("color") {
		builder.WithBackgroundColor(c.String("color"))
	}
	if c.IsSet("gradient-from") || c.IsSet("gradient-to") || c.IsSet("gradient-angle") {
		g := cfg.Background.Gradient
		if c.IsSet("gradient-from") {
			g.From = c.String("gradient-from")
		}
		if c.IsSet("gradient-to") {
			g.To = c.String("gradient-to")
		}
		if c.IsSet("gradient-angle") {
			g.Angle = c.Float64("gradient-angle")
		}
		builder.WithGradient(g.From, g.To, g.Angle)
	}
	if c.IsSet("mesh") {
		builder.WithMesh(c.String("mesh"))
	}
	if c.IsSet("pattern-text") {
		builder.WithPatternText(c.String("pattern-text"))
	}
	if c.IsSet("logo") {
		builder.WithLogo(c.String("logo"))
	}

	if c.IsSet("shadow-blur") || c.IsSet("shadow-opacity") {
		blur, opacity := cfg.Shadow.Blur, cfg.Shadow.Opacity
		if c.IsSet("shadow-blur") {
			blur = c.Float64("shadow-blur")
		}
		if c.IsSet("shadow-opacity") {
			opacity = c.Float64("shadow-opacity")
		}
		builder.WithShadow(blur, opacity)
	}
	for i, text := range c.StringSlice("text") {
		builder.WithTextOverlay(config.TextOverlayConfig{
			Text: text,
			X:    0.5,
			Y:    0.08 * float64(i+1),
			Font: config.FontConfig{Family: "sans", Weight: "bold"},
		})
	}

	if c.IsSet("format") {
		builder.WithFormat(c.String("format"))
	}
	if c.IsSet("quality") {
		builder.WithQuality(c.Int("quality"))
	}
	if c.IsSet("workers") {
		builder.WithWorkers(c.Int("workers"))
	}
	if c.Bool("debug") {
		builder.WithDebug(true, c.String("debug-dir"))
	}

	return builder.Build(), nil
}

// loadStyle decodes the logo, if any, and resolves the style.
func loadStyle(cfg config.Config, fs ports.FileSystem, processor ports.ImageProcessor) (pipeline.StyleParameters, error) {
	var logo image.Image
	if path := cfg.Background.Logo.Path; path != "" {
		data, err := fs.ReadFile(path)
		if err != nil {
			return pipeline.StyleParameters{}, fmt.Errorf("read logo: %w", err)
		}
		img, err := processor.Decode(data, ports.FormatAuto)
		if err != nil {
			return pipeline.StyleParameters{}, fmt.Errorf("decode logo: %w", err)
		}
		logo = img
	}

	style, err := cfg.ToStyle(logo)
	if err != nil {
		return style, fmt.Errorf("invalid style: %w", err)
	}
	return style, nil
}

// registerFonts loads "family[:bold]=path" specs into the default library.
func registerFonts(fs ports.FileSystem, specs []string) error {
	for _, spec := range specs {
		name, path, ok := strings.Cut(spec, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("invalid font spec %q, want family[:bold]=path", spec)
		}
		family, weight, _ := strings.Cut(name, ":")

		data, err := fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		w := pipeline.WeightNormal
		if strings.EqualFold(weight, string(pipeline.WeightBold)) {
			w = pipeline.WeightBold
		}
		if err := fonts.Default().Register(family, w, data); err != nil {
			return err
		}
	}
	return nil
}

// buildJobs maps inputs to output paths. A single input writes to output,
// or next to the input with a -mockshot suffix. Several inputs write into
// the output directory, or next to each input.
func buildJobs(inputs []string, output string, format ports.ImageFormat) []orchestrator.Job {
	jobs := make([]orchestrator.Job, len(inputs))
	for i, in := range inputs {
		out := output
		if len(inputs) > 1 || out == "" {
			name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + "-mockshot" + formatExt(format)
			dir := output
			if dir == "" {
				dir = filepath.Dir(in)
			}
			out = filepath.Join(dir, name)
		}
		jobs[i] = orchestrator.Job{InputPath: in, OutputPath: out}
	}
	return jobs
}

func formatExt(format ports.ImageFormat) string {
	switch format {
	case ports.FormatJPEG:
		return ".jpg"
	case ports.FormatWebP:
		return ".webp"
	default:
		return ".png"
	}
}

func writeSummary(fs ports.FileSystem, path string, cfg config.Config, result orchestrator.RunResult) error {
	builder := summarizer.NewBuilder().WithSettings(summarizer.Settings{
		Frame:         cfg.Frame,
		Background:    cfg.Background.Kind,
		Padding:       cfg.Padding,
		Zoom:          cfg.Zoom,
		BorderRadius:  cfg.BorderRadius,
		Rotation:      cfg.Rotation,
		OutputWidth:   cfg.Width,
		OutputHeight:  cfg.Height,
		ShadowBlur:    cfg.Shadow.Blur,
		ShadowOpacity: cfg.Shadow.Opacity,
		TextOverlays:  len(cfg.TextOverlays),
		Format:        cfg.Format,
		Workers:       cfg.Workers,
	})
	for _, out := range result.Outputs {
		builder.AddRender(summarizer.RenderInfo{
			Input:        out.InputPath,
			Output:       out.OutputPath,
			CanvasWidth:  out.Canvas.Width,
			CanvasHeight: out.Canvas.Height,
			FileSize:     int64(out.Bytes),
		})
	}

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(path, builder.Build())
}
