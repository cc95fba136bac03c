package model

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/logger"
)

// LoadData decodes an OBJ file and its material libraries from the asset
// manager and builds the meshes. Material libraries and texture paths are
// resolved relative to the OBJ file's directory. A missing material library
// is logged and the model loads untextured.
func LoadData(m *assets.Manager, objPath string, opts BuildOptions) (*ModelData, BuildStats, error) {
	log := logger.Named("model")
	objPath = assets.Clean(objPath)
	dir := path.Dir(objPath)
	name := strings.TrimSuffix(path.Base(objPath), path.Ext(objPath))

	raw, err := m.Load(objPath)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("loading model: %w", err)
	}

	_, libs := prepareOBJ(raw, name)
	var mtlSrc []byte
	for _, lib := range libs {
		libPath := path.Join(dir, lib)
		data, err := m.Load(libPath)
		if err != nil {
			log.Warn("material library not loaded", zap.String("path", libPath), zap.Error(err))
			continue
		}
		mtlSrc = append(mtlSrc, data...)
		mtlSrc = append(mtlSrc, '\n')
	}

	dec, maps, err := Decode(raw, mtlSrc, name)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("parsing %s: %w", objPath, err)
	}
	for _, w := range dec.Warnings {
		log.Debug("obj decoder warning", zap.String("path", objPath), zap.String("warning", w))
	}

	data, stats := Build(dec, maps, opts)
	data.Directory = dir
	if len(data.Meshes) == 0 {
		return nil, stats, fmt.Errorf("model %s has no drawable faces", objPath)
	}

	log.Info("model loaded",
		zap.String("path", objPath),
		zap.Int("meshes", stats.Meshes),
		zap.Int("triangles", stats.Triangles),
		zap.Int("vertices", stats.Vertices),
		zap.Int("skippedFaces", stats.SkippedFaces),
	)
	return data, stats, nil
}

// TexturePath returns the asset path of a texture reference.
func (d *ModelData) TexturePath(ref TextureRef) string {
	return path.Join(d.Directory, ref.Path)
}
