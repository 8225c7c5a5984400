package typescript

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/glb2ts/internal/codegen/common"
	"github.com/Alia5/glb2ts/internal/codegen/meta"
)

// FileExt is the extension of the generated module.
const FileExt = ".ts"

// Options tunes the rendered module.
type Options struct {
	// Imports replaces common.DefaultImports when non-empty. Lines are emitted verbatim.
	Imports []string
}

const modelTemplateTS = `{{.Header}}
{{range .Imports}}{{.}}
{{end}}
export type Model = {
  mesh: Mesh;
  assetContainer: AssetContainer;
  animations: {
{{- range .Animations}}
    {{key .Name}}: AnimationGroup;
{{- end}}
  };
};

export async function load(scene: Scene): Promise<Model> {
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
    mesh: loaded.meshes[0] as Mesh,
    assetContainer: loaded,
    animations: {
{{- range .Animations}}
      {{key .Name}}: loaded.animationGroups.find((ac) => ac.name === {{quote .Name}})!,
{{- end}}
    },
  };
}
`

var modelTmpl = template.Must(template.New("model").Funcs(template.FuncMap{
	"key":   common.PropertyKey,
	"quote": common.QuoteString,
}).Parse(modelTemplateTS))

// Render renders the TypeScript loader module for md.
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
