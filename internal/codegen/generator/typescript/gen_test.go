package typescript

import (
	"strings"
	"testing"

	"github.com/Alia5/glb2ts/internal/codegen/meta"
	"github.com/Alia5/glb2ts/internal/codegen/scanner"
	"github.com/Alia5/glb2ts/internal/stuberr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metadataFor(names ...string) *meta.Metadata {
	md := &meta.Metadata{BaseName: "hero", AssetFile: "hero.glb", ToolVersion: "1.2.3"}
	for i, n := range names {
		md.Animations = append(md.Animations, scanner.Animation{Name: n, Index: i})
	}
	return md
}

const walkRunTS = `// Code generated by glb2ts 1.2.3. DO NOT EDIT.
// Source: hero.glb

import { Scene } from "@babylonjs/core/scene";
import { Mesh } from "@babylonjs/core/Meshes/mesh";
import { AssetContainer } from "@babylonjs/core/assetContainer";
import { SceneLoader } from "@babylonjs/core/Loading/sceneLoader";
import { AnimationGroup } from "@babylonjs/core/Animations/animationGroup";

export type Model = {
  mesh: Mesh;
  assetContainer: AssetContainer;
  animations: {
    walk: AnimationGroup;
    run: AnimationGroup;
  };
};

export async function load(scene: Scene): Promise<Model> {
  const loaded = await SceneLoader.LoadAssetContainerAsync(
    "",
    "./hero.glb",
    scene,
    null,
    ".glb"
  );

  if (!loaded.meshes[0]) {
    throw new Error("No mesh found when loading hero.");
  }

  return {
    mesh: loaded.meshes[0] as Mesh,
    assetContainer: loaded,
    animations: {
      walk: loaded.animationGroups.find((ac) => ac.name === "walk")!,
      run: loaded.animationGroups.find((ac) => ac.name === "run")!,
    },
  };
}
`

func TestRenderWalkRun(t *testing.T) {
	out, err := Render(metadataFor("walk", "run"), Options{})
	require.NoError(t, err)
	assert.Equal(t, walkRunTS, out)
}

func TestRenderIsDeterministic(t *testing.T) {
	md := metadataFor("idle", "walk", "run", "jump", "die")
	md.SourceDigest = strings.Repeat("ab", 32)
	first, err := Render(md, Options{})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Render(md, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Contains(t, first, "// Metadata digest (blake2b-256): "+md.SourceDigest+"\n")
}

func TestRenderMembersInOrder(t *testing.T) {
	names := []string{"zeta", "alpha", "mid", "beta"}
	out, err := Render(metadataFor(names...), Options{})
	require.NoError(t, err)

	var members, lookups []string
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, ": AnimationGroup;") {
			members = append(members, strings.TrimSuffix(trimmed, ": AnimationGroup;"))
		}
		if strings.Contains(trimmed, "animationGroups.find") {
			lookups = append(lookups, trimmed[:strings.Index(trimmed, ":")])
		}
	}
	assert.Equal(t, names, members)
	assert.Equal(t, names, lookups)
}

func TestRenderQuotesUnsafeNames(t *testing.T) {
	out, err := Render(metadataFor("jump up", `say "hi"`, "default", "2hand"), Options{})
	require.NoError(t, err)

	assert.Contains(t, out, `    "jump up": AnimationGroup;`)
	assert.Contains(t, out, `      "jump up": loaded.animationGroups.find((ac) => ac.name === "jump up")!,`)
	assert.Contains(t, out, `    "say \"hi\"": AnimationGroup;`)
	assert.Contains(t, out, `ac.name === "say \"hi\"")!,`)
	assert.Contains(t, out, `    "default": AnimationGroup;`)
	assert.Contains(t, out, `    "2hand": AnimationGroup;`)
}

func TestRenderCustomImports(t *testing.T) {
	imports := []string{`import * as BABYLON from "babylonjs";`}
	out, err := Render(metadataFor("walk"), Options{Imports: imports})
	require.NoError(t, err)
	assert.Contains(t, out, "\nimport * as BABYLON from \"babylonjs\";\n\nexport type Model")
	assert.NotContains(t, out, "@babylonjs/core/scene")
}

func TestRenderEmptySchema(t *testing.T) {
	_, err := Render(metadataFor(), Options{})
	assert.ErrorIs(t, err, stuberr.ErrEmptySchema)
}
