// Package javascript renders the loader stub as an ES module typed with JSDoc,
// for projects that consume Babylon.js without a TypeScript build step.
package javascript

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/glb2ts/internal/codegen/common"
	"github.com/Alia5/glb2ts/internal/codegen/generator/typescript"
	"github.com/Alia5/glb2ts/internal/codegen/meta"
)

const FileExt = ".js"

// Options tunes the rendered module.
type Options = typescript.Options

const modelTemplateJS = `{{.Header}}
{{range .Imports}}{{.}}
{{end}}
/**
 * @typedef {{"{{"}}
{{- range .Animations}}
 *   {{docKey .Name}}: AnimationGroup;
{{- end}}
 * {{"}}"}} ModelAnimations
 */

/**
 * @typedef {Object} Model
 * @property {Mesh} mesh
 * @property {AssetContainer} assetContainer
 * @property {ModelAnimations} animations
 */

/**
 * @param {Scene} scene
 * @returns {Promise<Model>}
 */
export async function load(scene) {
  const loaded = await SceneLoader.LoadAssetContainerAsync(
    "",
    {{quote .AssetPath}},
    scene,
    null,
    ".glb"
  );

  if (!loaded.meshes[0]) {
    throw new Error({{quote .MeshError}});
  }

  return {
    mesh: /** @type {Mesh} */ (loaded.meshes[0]),
    assetContainer: loaded,
    animations: {
{{- range .Animations}}
      {{key .Name}}: loaded.animationGroups.find((ac) => ac.name === {{quote .Name}}),
{{- end}}
    },
  };
}
`

var modelTmpl = template.Must(template.New("model").Funcs(template.FuncMap{
	"key":    common.PropertyKey,
	"docKey": docKey,
	"quote":  common.QuoteString,
}).Parse(modelTemplateJS))

// docKey is PropertyKey made safe for a block comment.
func docKey(name string) string {
	return strings.ReplaceAll(common.PropertyKey(name), "*/", `*\/`)
}

// Render renders the JavaScript loader module for md.
func Render(md *meta.Metadata, opts Options) (string, error) {
	if err := md.Validate(); err != nil {
		return "", err
	}

	data := struct {
		Header     string
		Imports    []string
		Animations any
		AssetPath  string
		MeshError  string
	}{
		Header:     common.FileHeader("//", md.ToolVersion, md.AssetFile, md.SourceDigest),
		Imports:    common.ImportsOrDefault(opts.Imports),
		Animations: md.Animations,
		AssetPath:  md.AssetPath(),
		MeshError:  md.MeshError(),
	}

	var b strings.Builder
	if err := modelTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return b.String(), nil
}
