package common

// DefaultImports are the Babylon.js references every generated module needs.
var DefaultImports = []string{
	`import { Scene } from "@babylonjs/core/scene";`,
	`import { Mesh } from "@babylonjs/core/Meshes/mesh";`,
	`import { AssetContainer } from "@babylonjs/core/assetContainer";`,
	`import { SceneLoader } from "@babylonjs/core/Loading/sceneLoader";`,
	`import { AnimationGroup } from "@babylonjs/core/Animations/animationGroup";`,
}

// ImportsOrDefault returns imports, or DefaultImports when none are configured.
func ImportsOrDefault(imports []string) []string {
	if len(imports) > 0 {
		return imports
	}
	return DefaultImports
}
