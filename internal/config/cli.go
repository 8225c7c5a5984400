package config

import (
	"github.com/Alia5/glb2ts/internal/cmd"
	"github.com/Alia5/glb2ts/internal/log"

	"github.com/alecthomas/kong"
)

// CLI is the root command tree parsed by kong.
type CLI struct {
	ConfigFile string           `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"GLB2TS_CONFIG" type:"path"`
	Log        log.Config       `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate      `cmd:"" help:"Generate typed animation loaders from .glb files"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
