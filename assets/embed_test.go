package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadersEmbedded(t *testing.T) {
	names := []string{
		"shaders/basic.vert", "shaders/basic.frag",
		"shaders/mvp.vert", "shaders/mix.frag",
		"shaders/lighting.vert", "shaders/multiple_lights.frag",
		"shaders/skybox.vert", "shaders/skybox.frag",
	}
	for _, name := range names {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "#version 410 core"), name)
	}
}

func TestEveryShaderDeclaresVersion(t *testing.T) {
	entries, err := fs.ReadDir(FS, "shaders")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(FS, "shaders/"+e.Name())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "#version 410 core\n"), e.Name())
		assert.Contains(t, string(data), "void main()", e.Name())
	}
}
