package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures uniform uploads by name.
type recorder struct {
	values map[string]any
}

func newRecorder() *recorder {
	return &recorder{values: make(map[string]any)}
}

func (r *recorder) SetBool(name string, v bool)       { r.values[name] = v }
func (r *recorder) SetInt(name string, v int32)       { r.values[name] = v }
func (r *recorder) SetFloat(name string, v float32)   { r.values[name] = v }
func (r *recorder) SetVec2(name string, v mgl32.Vec2) { r.values[name] = v }
func (r *recorder) SetVec3(name string, v mgl32.Vec3) { r.values[name] = v }
func (r *recorder) SetVec4(name string, v mgl32.Vec4) { r.values[name] = v }
func (r *recorder) SetMat3(name string, m mgl32.Mat3) { r.values[name] = m }
func (r *recorder) SetMat4(name string, m mgl32.Mat4) { r.values[name] = m }

func TestMaterialApply(t *testing.T) {
	r := newRecorder()
	Gold.Apply(r, "material")

	assert.Equal(t, Gold.Ambient, r.values["material.ambient"])
	assert.Equal(t, Gold.Diffuse, r.values["material.diffuse"])
	assert.Equal(t, Gold.Specular, r.values["material.specular"])
	assert.Equal(t, float32(51.2), r.values["material.shininess"])
	assert.Len(t, r.values, 4)
}

func TestMapMaterialApply(t *testing.T) {
	r := newRecorder()
	MapMaterial{DiffuseUnit: 0, SpecularUnit: 1, Shininess: 64}.Apply(r, "material")

	assert.Equal(t, int32(0), r.values["material.diffuse"])
	assert.Equal(t, int32(1), r.values["material.specular"])
	assert.Equal(t, float32(64), r.values["material.shininess"])
}

func TestMaterialByName(t *testing.T) {
	m, ok := MaterialByName("emerald")
	require.True(t, ok)
	assert.Equal(t, Emerald, m)

	_, ok = MaterialByName("obsidian")
	assert.False(t, ok)

	names := map[string]bool{}
	for _, m := range Materials {
		assert.False(t, names[m.Name], "duplicate preset %s", m.Name)
		names[m.Name] = true
	}
}

func TestSpotLightUploadsCosines(t *testing.T) {
	r := newRecorder()
	spot := Flashlight(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -1})
	spot.Apply(r, "spotLight")

	cut := r.values["spotLight.cutOff"].(float32)
	outer := r.values["spotLight.outerCutOff"].(float32)
	assert.InDelta(t, math.Cos(12.5*math.Pi/180), cut, 1e-6)
	assert.InDelta(t, math.Cos(15*math.Pi/180), outer, 1e-6)
	assert.Greater(t, cut, outer, "inner cone has the larger cosine")

	assert.Equal(t, mgl32.Vec3{0, 0, -1}, r.values["spotLight.direction"])
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, r.values["spotLight.position"])
	assert.Equal(t, float32(0.09), r.values["spotLight.linear"])
}

func TestApplyPointLights(t *testing.T) {
	positions := []mgl32.Vec3{
		{0.7, 0.2, 2.0},
		{2.3, -3.3, -4.0},
		{-4.0, 2.0, -12.0},
		{0.0, 0.0, -3.0},
		{9, 9, 9},
	}
	var lights []PointLight
	for _, p := range positions {
		lights = append(lights, NewPointLight(p, mgl32.Vec3{1, 1, 1}, 50))
	}

	r := newRecorder()
	n := ApplyPointLights(r, "pointLights", lights)

	assert.Equal(t, MaxPointLights, n)
	assert.Equal(t, int32(4), r.values["numPointLights"])
	assert.Equal(t, positions[3], r.values["pointLights[3].position"])
	assert.Equal(t, float32(1), r.values["pointLights[0].constant"])
	_, extra := r.values["pointLights[4].position"]
	assert.False(t, extra, "lights beyond the array size are not uploaded")

	r = newRecorder()
	assert.Equal(t, 1, ApplyPointLights(r, "pointLights", lights[:1]))
	assert.Equal(t, int32(1), r.values["numPointLights"])
}

func TestAttenuation(t *testing.T) {
	tests := []struct {
		distance float32
		want     float32 // linear term
	}{
		{1, 0.7},
		{7, 0.7},
		{8, 0.35},
		{50, 0.09},
		{51, 0.07},
		{3250, 0.0014},
		{10000, 0.0014},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Attenuation(tt.distance).Linear, "distance %v", tt.distance)
	}
}

func TestPointLightIntensity(t *testing.T) {
	l := NewPointLight(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 50)
	assert.InDelta(t, 1.0, l.Intensity(0), 1e-6)
	assert.InDelta(t, 1/(1+0.09*10+0.032*100), l.Intensity(10), 1e-6)
	assert.Less(t, l.Intensity(50), l.Intensity(10))

	assert.Equal(t, float32(1), PointLight{}.Intensity(5), "degenerate terms do not divide by zero")
}

func TestSunDirection(t *testing.T) {
	up := SunDirection(0, 90)
	assert.InDelta(t, 1, up[1], 1e-6)

	east := SunDirection(90, 0)
	assert.InDelta(t, 1, east[0], 1e-6)
	assert.InDelta(t, 0, east[1], 1e-6)

	assert.InDelta(t, 1, SunDirection(37, 21).Len(), 1e-6)
}

func TestSunCycle(t *testing.T) {
	s := DefaultSun()

	assert.InDelta(t, 0, s.Elevation(0), 1e-4)
	assert.InDelta(t, s.MaxElevation, s.Elevation(s.DayLength/4), 1e-3)

	noon := s.Light(s.DayLength / 4)
	assert.Less(t, noon.Direction[1], float32(0), "light points down at noon")
	assert.Greater(t, noon.Diffuse[0], float32(0))

	night := s.Light(s.DayLength * 3 / 4)
	assert.Equal(t, mgl32.Vec3{}, night.Diffuse)
	assert.Equal(t, s.Color.Mul(0.1), night.Ambient)
}
