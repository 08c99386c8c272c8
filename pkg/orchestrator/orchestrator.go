// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/ports"
)

// Job is one source image and where its render goes.
type Job struct {
	InputPath  string
	OutputPath string
}

// Config contains all configuration for the orchestrator.
type Config struct {
	Jobs []Job

	Style pipeline.StyleParameters

	// Encoding
	Format  ports.ImageFormat // FormatAuto follows each output extension
	Quality int

	// Concurrency
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Style:   pipeline.DefaultStyleParameters(),
		Format:  ports.FormatAuto,
		Quality: 90,
		Workers: 4,
	}
}

// Renderer composites images onto pooled surfaces.
type Renderer interface {
	ExecuteBatch(ctx context.Context, inputs []pipeline.RenderInput, numWorkers int) ([]pipeline.RenderResult, error)
	Release(res pipeline.RenderResult)
}

// FormatDetector maps an output path to an image format.
type FormatDetector func(path string) ports.ImageFormat

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutGeometry]
	renderer    Renderer
	processor   ports.ImageProcessor
	detect      FormatDetector
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutGeometry],
	renderer Renderer,
	processor ports.ImageProcessor,
	detect FormatDetector,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	if detect == nil {
		detect = func(string) ports.ImageFormat { return ports.FormatPNG }
	}
	return &Orchestrator{
		layoutStage: layoutStage,
		renderer:    renderer,
		processor:   processor,
		detect:      detect,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Output describes one written render.
type Output struct {
	InputPath  string
	OutputPath string
	Canvas     pipeline.Dimension
	Bytes      int
}

// RunResult contains the results of a pipeline run for summary output.
type RunResult struct {
	Outputs []Output
}

// Run executes the complete pipeline for every job.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if len(config.Jobs) == 0 {
		return RunResult{}, nil
	}

	// 1. Decode sources
	inputs := make([]pipeline.RenderInput, len(config.Jobs))
	for i, job := range config.Jobs {
		img, err := o.readImage(job.InputPath)
		if err != nil {
			o.logger.Error("Failed to read image: %s", err)
			return RunResult{}, fmt.Errorf("read %s: %w", job.InputPath, err)
		}
		inputs[i] = pipeline.RenderInput{Image: img, Style: config.Style}

		o.logger.Info("Rendering %s (%s frame, %s background)...",
			filepath.Base(job.InputPath), string(config.Style.Frame), string(config.Style.Background.Kind))
	}

	// 2. Layout calculation
	geometries := make([]pipeline.LayoutGeometry, len(inputs))
	for i, in := range inputs {
		b := in.Image.Bounds()
		geom, err := o.layoutStage.Execute(ctx, config.Style.LayoutInputFor(pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}))
		if err != nil {
			return RunResult{}, fmt.Errorf("layout stage: %w", err)
		}
		geometries[i] = geom
	}

	// Save layout debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(geometries, "", "  "); err == nil {
			o.sink.SaveGeometryJSON(data)
		}
		if data, err := yaml.Marshal(describeStyle(config.Style)); err == nil {
			o.sink.SaveStyleYAML(data)
		}
	}

	// 3. Render
	results, err := o.renderer.ExecuteBatch(ctx, inputs, config.Workers)
	if err != nil {
		o.logger.Error("Failed to render: %s", err)
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}
	defer func() {
		for _, r := range results {
			o.renderer.Release(r)
		}
	}()

	// 4. Encode and write outputs
	outputs := make([]Output, 0, len(results))
	for i, res := range results {
		job := config.Jobs[i]
		data, err := o.encode(res.Surface.Context().Image(), job.OutputPath, config)
		if err != nil {
			o.logger.Error("Failed to write output: %s", err)
			return RunResult{}, fmt.Errorf("encode %s: %w", job.OutputPath, err)
		}
		if err := o.fs.WriteFile(job.OutputPath, data); err != nil {
			o.logger.Error("Failed to write output: %s", err)
			return RunResult{}, fmt.Errorf("write output: %w", err)
		}

		o.logger.Info("Render completed: %dx%d", res.Geometry.Canvas.Width, res.Geometry.Canvas.Height)
		o.logger.Info("Output saved to %s", job.OutputPath)

		outputs = append(outputs, Output{
			InputPath:  job.InputPath,
			OutputPath: job.OutputPath,
			Canvas:     res.Geometry.Canvas,
			Bytes:      len(data),
		})
	}

	return RunResult{Outputs: outputs}, nil
}

func (o *Orchestrator) readImage(path string) (image.Image, error) {
	data, err := o.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return o.processor.Decode(data, ports.FormatAuto)
}

func (o *Orchestrator) encode(img image.Image, path string, config Config) ([]byte, error) {
	format := config.Format
	if format == ports.FormatAuto {
		format = o.detect(path)
	}
	return o.processor.Encode(img, format, config.Quality)
}
