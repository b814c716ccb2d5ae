package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/meshprim/internal/config"
	"github.com/chazu/meshprim/internal/logger"
	"github.com/chazu/meshprim/pkg/engine"
	"github.com/chazu/meshprim/pkg/kernel"
	"github.com/chazu/meshprim/pkg/kernel/parametric"
	"github.com/chazu/meshprim/pkg/kernel/sdfx"
	"github.com/chazu/meshprim/pkg/mesh"
	"github.com/chazu/meshprim/pkg/tessellate"
	"go.uber.org/zap"
)

// errEval marks a program that parsed or ran with errors. The details have
// already been written to stderr.
var errEval = errors.New("evaluation failed")

// options holds the command-line flags.
type options struct {
	configPath string
	expr       string
	kernel     string
	cells      int
	debug      bool
	buffers    bool
	dumpConfig bool
	file       string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("meshgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringVar(&o.expr, "e", "", "Evaluate this program instead of reading a file")
	fs.StringVar(&o.kernel, "kernel", "", "Geometry kernel: parametric or sdfx")
	fs.IntVar(&o.cells, "cells", 0, "Marching cubes cells for the sdfx kernel")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.buffers, "buffers", false, "Include vertex, normal, uv and index buffers in the output")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "Print the effective config as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one source file, got %d", fs.NArg())
	}
	o.file = fs.Arg(0)
	return &o, nil
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *config.Config, o *options) {
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	if o.kernel != "" {
		cfg.Kernel.Name = o.kernel
	}
	if o.cells > 0 {
		cfg.Kernel.SdfxCells = o.cells
	}
}

// newKernel builds the kernel named in cfg.
func newKernel(cfg *config.Config) (kernel.Kernel, error) {
	switch cfg.Kernel.Name {
	case config.KernelParametric:
		return parametric.New(cfg.Resolution), nil
	case config.KernelSdfx:
		return sdfx.New(cfg.Kernel.SdfxCells), nil
	}
	return nil, fmt.Errorf("unknown kernel %q", cfg.Kernel.Name)
}

// readSource picks the program from -e, a file argument, or stdin.
func readSource(o *options, stdin io.Reader) (string, error) {
	switch {
	case o.expr != "":
		return o.expr, nil
	case o.file != "" && o.file != "-":
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// report is the JSON document written to stdout.
type report struct {
	Kernel string       `json:"kernel"`
	Meshes []meshReport `json:"meshes"`
}

type meshReport struct {
	Name      string     `json:"name"`
	Vertices  int        `json:"vertices"`
	Triangles int        `json:"triangles"`
	Min       [3]float64 `json:"min"`
	Max       [3]float64 `json:"max"`
	Buffers   *mesh.Mesh `json:"buffers,omitempty"`
}

func summarize(k kernel.Kernel, meshes []*mesh.Mesh, withBuffers bool) report {
	r := report{Kernel: k.Name(), Meshes: make([]meshReport, 0, len(meshes))}
	for _, m := range meshes {
		bb := m.BoundingBox()
		mr := meshReport{
			Name:      m.Name,
			Vertices:  m.VertexCount(),
			Triangles: m.TriangleCount(),
			Min:       [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z},
			Max:       [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z},
		}
		if withBuffers {
			mr.Buffers = m
		}
		r.Meshes = append(r.Meshes, mr)
	}
	return r
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, o)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if o.dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	k, err := newKernel(cfg)
	if err != nil {
		return err
	}

	source, err := readSource(o, stdin)
	if err != nil {
		return err
	}
	logger.Debug("source read", zap.Int("bytes", len(source)), zap.String("file", o.file))

	eng := engine.NewEngine(engine.WithTimeout(cfg.Engine.Timeout))
	parts, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(stderr, "error: %s\n", e.Error())
		}
		return errEval
	}
	logger.Info("program evaluated", zap.Int("parts", len(parts)), zap.String("kernel", k.Name()))

	meshes, err := tessellate.Tessellate(parts, k)
	if err != nil {
		logger.Error("tessellation failed", zap.Error(err))
		return err
	}
	for _, m := range meshes {
		if m.IsEmpty() {
			logger.Warn("mesh is empty", zap.String("part", m.Name))
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summarize(k, meshes, o.buffers))
}
