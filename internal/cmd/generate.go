package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/glb2ts/internal/codegen/generator"
	"github.com/Alia5/glb2ts/internal/log"
	"github.com/Alia5/glb2ts/internal/stuberr"

	"golang.org/x/sync/errgroup"
)

// InputExt is the only accepted input extension.
const InputExt = ".glb"

type Generate struct {
	Paths           []string `arg:"" name:"path" help:"Binary glTF (.glb) files to generate loaders for"`
	Target          string   `help:"Output language: typescript or javascript" default:"typescript" enum:"typescript,javascript" env:"GLB2TS_TARGET"`
	TrustedProducer bool     `help:"Read the JSON chunk at the fixed offset instead of walking the chunk list" env:"GLB2TS_TRUSTED_PRODUCER"`
	Import          []string `help:"Import line emitted instead of the Babylon.js defaults (repeatable)" env:"GLB2TS_IMPORT"`
	OutDir          string   `help:"Write generated files to this directory instead of beside each input" env:"GLB2TS_OUT_DIR"`
	Stdout          bool     `help:"Print generated source to stdout instead of writing files"`
	Check           bool     `help:"Fail when generated files on disk are missing or out of date, without writing"`
	Jobs            int      `help:"Maximum number of inputs processed concurrently" default:"4" env:"GLB2TS_JOBS"`

	out io.Writer `kong:"-"`
}

// Validate is called by Kong before Run; inputs that fail here never reach the decoder.
func (g *Generate) Validate() error {
	if len(g.Paths) == 0 {
		return errors.New("no valid .glb file provided")
	}
	if g.Stdout && g.Check {
		return errors.New("--stdout and --check are mutually exclusive")
	}
	for _, p := range g.Paths {
		if !strings.EqualFold(filepath.Ext(p), InputExt) {
			return fmt.Errorf("%s: not a %s file", p, InputExt)
		}
		st, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("couldn't find file %s: %w", p, err)
		}
		if st.IsDir() {
			return fmt.Errorf("%s is a directory", p)
		}
	}
	return nil
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	gen, err := generator.New(logger, rawLogger, generator.Options{
		Target:          g.Target,
		TrustedProducer: g.TrustedProducer,
		Imports:         g.Import,
		OutDir:          g.OutDir,
	})
	if err != nil {
		return err
	}

	artifacts, err := g.generateAll(context.Background(), logger, gen)
	if err != nil {
		return err
	}
	return g.emit(logger, artifacts)
}

// generateAll runs the pipeline for every input. Results keep input order.
func (g *Generate) generateAll(ctx context.Context, logger *slog.Logger, gen *generator.Generator) ([]*generator.Artifact, error) {
	artifacts := make([]*generator.Artifact, len(g.Paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.Jobs, 1))
	for i, p := range g.Paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Info("Generating file", "path", p, "target", g.Target)
			a, err := gen.GenerateFile(p)
			if err != nil {
				logger.Error("Generation failed, nothing written", "path", p, "kind", stuberr.KindOf(err), "error", err)
				return err
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (g *Generate) emit(logger *slog.Logger, artifacts []*generator.Artifact) error {
	out := g.out
	if out == nil {
		out = os.Stdout
	}

	var stale []error
	for _, a := range artifacts {
		switch {
		case g.Stdout:
			if _, err := io.WriteString(out, a.Source); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
		case g.Check:
			if err := generator.Check(a); err != nil {
				logger.Error("Generated file is out of date", "path", a.OutputPath, "input", a.InputPath)
				stale = append(stale, err)
				continue
			}
			logger.Info("Up to date", "path", a.OutputPath)
		default:
			if err := generator.WriteFile(a); err != nil {
				return fmt.Errorf("failed to write %s: %w", a.OutputPath, err)
			}
			logger.Info("Wrote file", "path", a.OutputPath, "animations", len(a.Animations))
		}
	}
	return errors.Join(stale...)
}
