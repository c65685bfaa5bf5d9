package scenes

import "embed"

// assets holds the meshes and textures the built-in scenes load
//
//go:embed meshes/*.ply textures/*.png
var assets embed.FS
