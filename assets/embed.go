// Package assets embeds the default shader set. The directory layout matches
// the on-disk asset root, so a file under assets/shaders on disk overrides
// the embedded copy of the same name.
package assets

import "embed"

// FS holds every vertex and fragment shader under shaders/.
//
//go:embed shaders/*.vert shaders/*.frag
var FS embed.FS
