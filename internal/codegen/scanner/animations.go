package scanner

import (
	"fmt"

	"github.com/Alia5/glb2ts/internal/stuberr"
	"github.com/Alia5/glb2ts/metadata"
)

// Animation is one named entry of the glTF "animations" array.
type Animation struct {
	Name string
	// Index is the position in the source array.
	Index int
	// Channels and Samplers are carried through untouched; null when absent.
	Channels metadata.Value
	Samplers metadata.Value
}

// ScanAnimations projects the top-level "animations" array of doc, preserving
// source order. Duplicate names are rejected because they would produce
// duplicate members in generated code.
func ScanAnimations(doc metadata.Value) ([]Animation, error) {
	field, err := doc.Field("animations")
	if err != nil {
		return nil, err
	}
	elems, err := field.AsArray("animations")
	if err != nil {
		return nil, err
	}

	anims := make([]Animation, 0, len(elems))
	seen := make(map[string]int, len(elems))
	for i, e := range elems {
		path := fmt.Sprintf("animations[%d]", i)
		if e.Kind() != metadata.Object {
			return nil, stuberr.InvalidFieldType(path, metadata.Object.String(), "got "+e.Kind().String())
		}
		nameVal, ok := e.Lookup("name")
		if !ok || nameVal.Kind() != metadata.String {
			return nil, stuberr.MissingField("name", path+" has no string name")
		}
		name, _ := nameVal.AsString("name")
		if prev, dup := seen[name]; dup {
			return nil, stuberr.DuplicateName(name, fmt.Sprintf("animations[%d] repeats animations[%d]", i, prev))
		}
		seen[name] = i

		a := Animation{Name: name, Index: i}
		a.Channels, _ = e.Lookup("channels")
		a.Samplers, _ = e.Lookup("samplers")
		anims = append(anims, a)
	}
	return anims, nil
}

// AnimationNames returns the names of anims in order.
func AnimationNames(anims []Animation) []string {
	names := make([]string, len(anims))
	for i, a := range anims {
		names[i] = a.Name
	}
	return names
}
