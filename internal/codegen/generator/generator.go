package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Alia5/glb2ts/glb"
	"github.com/Alia5/glb2ts/internal/codegen/common"
	"github.com/Alia5/glb2ts/internal/codegen/generator/javascript"
	"github.com/Alia5/glb2ts/internal/codegen/generator/typescript"
	"github.com/Alia5/glb2ts/internal/codegen/meta"
	"github.com/Alia5/glb2ts/internal/codegen/scanner"
	"github.com/Alia5/glb2ts/internal/log"
	"github.com/Alia5/glb2ts/metadata"
)

// Renderer turns projected metadata into source text.
type Renderer func(md *meta.Metadata, opts typescript.Options) (string, error)

// Target is one output language.
type Target struct {
	Ext    string
	Render Renderer
}

var targets = map[string]Target{
	"typescript": {Ext: typescript.FileExt, Render: typescript.Render},
	"javascript": {Ext: javascript.FileExt, Render: javascript.Render},
}

// DefaultTarget is used when Options.Target is empty.
const DefaultTarget = "typescript"

// Targets returns the supported target names, sorted.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for k := range targets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Options configures a Generator.
type Options struct {
	Target          string
	TrustedProducer bool
	Imports         []string
	// OutDir places generated files there instead of beside their input.
	OutDir string
}

// Artifact is the result of one pipeline run. Nothing is written to disk
// until the caller passes it to WriteFile.
type Artifact struct {
	InputPath  string
	OutputPath string
	Source     string
	Animations []string
	// Warnings holds non-fatal findings such as an unexpected container version.
	Warnings []error
}

type Generator struct {
	logger *slog.Logger
	raw    log.RawLogger
	target Target
	opts   Options
}

func New(logger *slog.Logger, raw log.RawLogger, opts Options) (*Generator, error) {
	if opts.Target == "" {
		opts.Target = DefaultTarget
	}
	t, ok := targets[opts.Target]
	if !ok {
		return nil, fmt.Errorf("unsupported target '%s' (supported: %v)", opts.Target, Targets())
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Generator{
		logger: logger,
		raw:    raw,
		target: t,
		opts:   opts,
	}, nil
}

// OutputPath returns where the artifact for inputPath is written.
func (g *Generator) OutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	if g.opts.OutDir != "" {
		dir = g.opts.OutDir
	}
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+g.target.Ext)
}

// GenerateFile reads the container at path and renders its stub.
// The file is closed before rendering starts, on success and failure alike.
func (g *Generator) GenerateFile(path string) (*Artifact, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	a, err := g.Generate(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.InputPath = path
	a.OutputPath = g.OutputPath(path)
	return a, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Generate runs the pipeline over an in-memory container. assetFile is the
// file name the generated loader references (e.g. "hero.glb").
func (g *Generator) Generate(data []byte, assetFile string) (*Artifact, error) {
	g.logger.Debug("Decoding container", "asset", assetFile, "bytes", len(data), "trustedProducer", g.opts.TrustedProducer)
	if len(data) >= glb.HeaderSize {
		g.raw.Log(assetFile+" header", 0, data[:glb.HeaderSize])
	}

	c, err := glb.Decode(data, glb.Options{TrustedProducer: g.opts.TrustedProducer})
	if err != nil {
		return nil, err
	}
	for _, w := range c.Warnings {
		g.logger.Warn("Continuing despite container warning", "asset", assetFile, "version", c.Header.Version, "warning", w)
	}
	for _, s := range c.Skipped {
		g.logger.Debug("Skipped chunk", "asset", assetFile, "type", s.TypeName(), "offset", s.Offset, "length", s.Length)
		g.raw.Log(assetFile+" chunk "+s.TypeName(), int(s.Offset), data[s.Offset:s.PayloadOffset()])
	}
	g.raw.Log(assetFile+" chunk JSON", int(c.JSON.Offset), data[c.JSON.Offset:c.JSON.PayloadOffset()])

	doc, err := metadata.Decode(c.JSON.Data)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Parse successful", "asset", assetFile, "jsonBytes", c.JSON.Length)

	anims, err := scanner.ScanAnimations(doc)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Found animations", "asset", assetFile, "count", len(anims))
	for _, anim := range anims {
		g.logger.Log(context.Background(), log.LevelTrace, "Projected animation",
			"asset", assetFile, "index", anim.Index, "name", anim.Name, "channels", anim.Channels, "samplers", anim.Samplers)
	}

	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	base := strings.TrimSuffix(assetFile, filepath.Ext(assetFile))
	md := &meta.Metadata{
		BaseName:     base,
		AssetFile:    assetFile,
		Animations:   anims,
		SourceDigest: common.Digest(c.JSON.Data),
		ToolVersion:  version,
	}

	src, err := g.target.Render(md, typescript.Options{Imports: g.opts.Imports})
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Source:     src,
		Animations: scanner.AnimationNames(anims),
		Warnings:   c.Warnings,
	}, nil
}
