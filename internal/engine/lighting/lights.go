package lighting

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

// MaxPointLights is the size of the point light array in the shaders.
const MaxPointLights = 4

// Light is a position-only light without attenuation.
type Light struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Apply uploads the light under prefix.
func (l Light) Apply(u shader.Uniforms, prefix string) {
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
}

// WhiteLight returns a light with the usual 0.2/0.5/1.0 intensities.
func WhiteLight(position mgl32.Vec3) Light {
	return Light{
		Position: position,
		Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:  mgl32.Vec3{0.5, 0.5, 0.5},
		Specular: mgl32.Vec3{1.0, 1.0, 1.0},
	}
}

// DirLight is a light infinitely far away, such as the sun.
type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Apply uploads the light under prefix.
func (l DirLight) Apply(u shader.Uniforms, prefix string) {
	u.SetVec3(prefix+".direction", l.Direction)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
}

// PointLight is an omnidirectional light that fades with distance.
type PointLight struct {
	Position  mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// NewPointLight creates a point light reaching roughly the given distance.
func NewPointLight(position mgl32.Vec3, color mgl32.Vec3, distance float32) PointLight {
	a := Attenuation(distance)
	return PointLight{
		Position:  position,
		Ambient:   color.Mul(0.05),
		Diffuse:   color.Mul(0.8),
		Specular:  color,
		Constant:  a.Constant,
		Linear:    a.Linear,
		Quadratic: a.Quadratic,
	}
}

// Intensity returns the attenuation factor at distance d.
func (l PointLight) Intensity(d float32) float32 {
	denom := l.Constant + l.Linear*d + l.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// Apply uploads the light under prefix.
func (l PointLight) Apply(u shader.Uniforms, prefix string) {
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
	u.SetFloat(prefix+".constant", l.Constant)
	u.SetFloat(prefix+".linear", l.Linear)
	u.SetFloat(prefix+".quadratic", l.Quadratic)
}

// SpotLight is a point light restricted to a cone.
// CutOff and OuterCutOff are half-angles in degrees; the shader receives their cosines.
type SpotLight struct {
	PointLight
	Direction   mgl32.Vec3
	CutOff      float32
	OuterCutOff float32
}

// Apply uploads the light under prefix.
func (l SpotLight) Apply(u shader.Uniforms, prefix string) {
	l.PointLight.Apply(u, prefix)
	u.SetVec3(prefix+".direction", l.Direction)
	u.SetFloat(prefix+".cutOff", cosDeg(l.CutOff))
	u.SetFloat(prefix+".outerCutOff", cosDeg(l.OuterCutOff))
}

// Flashlight returns a spot light with a soft 12.5°/15° edge.
func Flashlight(position, direction mgl32.Vec3) SpotLight {
	a := Attenuation(50)
	return SpotLight{
		PointLight: PointLight{
			Position:  position,
			Diffuse:   mgl32.Vec3{1, 1, 1},
			Specular:  mgl32.Vec3{1, 1, 1},
			Constant:  a.Constant,
			Linear:    a.Linear,
			Quadratic: a.Quadratic,
		},
		Direction:   direction,
		CutOff:      12.5,
		OuterCutOff: 15,
	}
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

// ApplyPointLights uploads up to MaxPointLights lights as name[i] and sets
// the matching count uniform (pointLights -> numPointLights).
// It returns the number of lights uploaded.
func ApplyPointLights(u shader.Uniforms, name string, lights []PointLight) int {
	n := min(len(lights), MaxPointLights)
	for i := 0; i < n; i++ {
		lights[i].Apply(u, name+"["+strconv.Itoa(i)+"]")
	}
	u.SetInt(countUniform(name), int32(n))
	return n
}

func countUniform(name string) string {
	if name == "" {
		return "num"
	}
	return "num" + strings.ToUpper(name[:1]) + name[1:]
}

// AttenuationTerms are the coefficients of 1/(c + l·d + q·d²).
type AttenuationTerms struct {
	Distance  float32
	Constant  float32
	Linear    float32
	Quadratic float32
}

// attenuationTable covers distances from 7 to 3250 units.
var attenuationTable = []AttenuationTerms{
	{7, 1.0, 0.7, 1.8},
	{13, 1.0, 0.35, 0.44},
	{20, 1.0, 0.22, 0.20},
	{32, 1.0, 0.14, 0.07},
	{50, 1.0, 0.09, 0.032},
	{65, 1.0, 0.07, 0.017},
	{100, 1.0, 0.045, 0.0075},
	{160, 1.0, 0.027, 0.0028},
	{200, 1.0, 0.022, 0.0019},
	{325, 1.0, 0.014, 0.0007},
	{600, 1.0, 0.007, 0.0002},
	{3250, 1.0, 0.0014, 0.000007},
}

// Attenuation returns the smallest table entry covering distance.
// Distances beyond the table use the last entry.
func Attenuation(distance float32) AttenuationTerms {
	for _, t := range attenuationTable {
		if distance <= t.Distance {
			return t
		}
	}
	return attenuationTable[len(attenuationTable)-1]
}
