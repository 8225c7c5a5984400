package meta

import (
	"fmt"

	"github.com/Alia5/glb2ts/internal/stuberr"
)

// Validate checks that md can be rendered. An asset without animations is
// rejected rather than rendered as an empty member list.
func (md *Metadata) Validate() error {
	if len(md.Animations) == 0 {
		return stuberr.EmptySchema(fmt.Sprintf("%s declares no animations", md.AssetFile))
	}
	return nil
}
