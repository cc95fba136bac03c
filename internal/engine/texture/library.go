package texture

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/logger"
)

// Library loads textures through the asset manager and uploads each path
// once per set of options.
type Library struct {
	assets   *assets.Manager
	textures map[libraryKey]*Texture
	log      *zap.Logger
}

// libraryKey identifies an upload. Options are part of it because FlipY and
// sampling state are baked into the texture.
type libraryKey struct {
	path string
	opts Options
}

func keyFor(path string, opts Options) libraryKey {
	return libraryKey{path: assets.Clean(path), opts: opts}
}

// NewLibrary creates an empty library.
func NewLibrary(m *assets.Manager) *Library {
	return &Library{
		assets:   m,
		textures: make(map[libraryKey]*Texture),
		log:      logger.Named("texture"),
	}
}

// Image loads and decodes an image without uploading it.
func (l *Library) Image(path string) (image.Image, error) {
	data, err := l.assets.Load(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// imageOrMissing returns the decoded image, or the checkerboard when it
// cannot be loaded.
func (l *Library) imageOrMissing(path string) (image.Image, bool) {
	img, err := l.Image(path)
	if err != nil {
		l.log.Warn("texture not loaded, using placeholder",
			zap.String("path", path),
			zap.Error(err),
		)
		return Missing(), false
	}
	return img, true
}

// Get returns the texture for path and opts, uploading it on first use.
// A missing or broken file yields a placeholder texture rather than an error.
func (l *Library) Get(path string, opts Options) (*Texture, error) {
	key := keyFor(path, opts)
	if t, ok := l.textures[key]; ok {
		return t, nil
	}

	img, ok := l.imageOrMissing(key.path)
	t, err := Upload2D(img, opts)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", key.path, err)
	}
	t.Path = key.path
	l.textures[key] = t

	if ok {
		l.log.Debug("texture loaded",
			zap.String("path", key.path),
			zap.Bool("flipY", opts.FlipY),
			zap.Int("width", t.Width),
			zap.Int("height", t.Height),
			zap.Stringer("format", t.Format),
		)
	}
	return t, nil
}

// Cubemap loads six face images and uploads them as a cube map.
// Missing faces are replaced by the placeholder so the sky still draws.
func (l *Library) Cubemap(paths [6]string) (*Cubemap, error) {
	var faces [6]image.Image
	size := 0
	for i, p := range paths {
		img, ok := l.imageOrMissing(p)
		if ok && size == 0 {
			size = img.Bounds().Dx()
		}
		faces[i] = img
	}
	// Scale placeholders to the real faces
	for i, p := range paths {
		if size > 0 && faces[i].Bounds().Dx() != size {
			l.log.Debug("resizing cubemap face", zap.String("path", p), zap.Int("size", size))
			faces[i] = resize(faces[i], size)
		}
	}
	return LoadCubemap(faces)
}

// Len returns the number of uploaded textures.
func (l *Library) Len() int {
	return len(l.textures)
}

// Delete frees every texture in the library.
func (l *Library) Delete() {
	for key, t := range l.textures {
		t.Delete()
		delete(l.textures, key)
	}
}
