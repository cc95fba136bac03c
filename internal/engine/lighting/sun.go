package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the sun. Longitude rotates around Y, latitude is
// the elevation above the horizon.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lon := float64(mgl32.DegToRad(longitude))
	lat := float64(mgl32.DegToRad(latitude))

	return mgl32.Vec3{
		float32(math.Cos(lat) * math.Sin(lon)),
		float32(math.Sin(lat)),
		float32(math.Cos(lat) * math.Cos(lon)),
	}
}

// Sun moves a directional light across the sky over a day.
type Sun struct {
	Longitude    float32 // compass heading of the sun's path, degrees
	MaxElevation float32 // noon elevation, degrees
	DayLength    float32 // seconds per full cycle
	Color        mgl32.Vec3
}

// DefaultSun is a warm sun with a one-minute day.
func DefaultSun() Sun {
	return Sun{
		Longitude:    30,
		MaxElevation: 60,
		DayLength:    60,
		Color:        mgl32.Vec3{1.0, 0.95, 0.85},
	}
}

// Elevation returns the sun's elevation in degrees at time t.
// It rises at t=0, peaks at a quarter day and sets at half a day.
func (s Sun) Elevation(t float32) float32 {
	if s.DayLength <= 0 {
		return s.MaxElevation
	}
	phase := float64(t/s.DayLength) * 2 * math.Pi
	return s.MaxElevation * float32(math.Sin(phase))
}

// Light returns the directional light for time t. Below the horizon only
// the ambient term remains.
func (s Sun) Light(t float32) DirLight {
	elev := s.Elevation(t)
	// Light travels away from the sun
	dir := SunDirection(s.Longitude, elev).Mul(-1)

	strength := float32(0)
	if elev > 0 {
		strength = float32(math.Sin(float64(mgl32.DegToRad(elev))))
	}
	return DirLight{
		Direction: dir,
		Ambient:   s.Color.Mul(0.1),
		Diffuse:   s.Color.Mul(0.8 * strength),
		Specular:  s.Color.Mul(strength),
	}
}
