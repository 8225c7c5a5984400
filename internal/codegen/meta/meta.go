package meta

import (
	"fmt"

	"github.com/Alia5/glb2ts/internal/codegen/scanner"
)

// Metadata holds everything a target renderer needs to emit a loader stub.
// Shared between the pipeline and the target-specific renderers.
type Metadata struct {
	BaseName     string              // input file name without extension, e.g. "hero"
	AssetFile    string              // input file name as referenced by the loader, e.g. "hero.glb"
	Animations   []scanner.Animation // source order
	SourceDigest string              // hex blake2b-256 of the JSON chunk payload
	ToolVersion  string
}

// AssetPath is the module-relative URL the loader fetches.
func (md *Metadata) AssetPath() string {
	return "./" + md.AssetFile
}

// MeshError is the message thrown when the loaded container has no mesh.
func (md *Metadata) MeshError() string {
	return fmt.Sprintf("No mesh found when loading %s.", md.BaseName)
}
