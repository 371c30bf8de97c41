package astro

import (
	"math"
	"time"
)

// Detectors holds one value per interferometer of the ground-based network.
type Detectors[T any] struct {
	Hanford    T
	Livingston T
	Virgo      T
}

// Map applies fn to each detector's value.
func Map[T, U any](d Detectors[T], fn func(Site, T) U) Detectors[U] {
	return Detectors[U]{
		Hanford:    fn(LIGOHanford, d.Hanford),
		Livingston: fn(LIGOLivingston, d.Livingston),
		Virgo:      fn(VirgoSite, d.Virgo),
	}
}

// AntennaPattern is the sensitivity of one detector to the plus and cross
// polarisations.
type AntennaPattern struct {
	Plus  float64
	Cross float64
}

// AntennaResponse is the pattern of every detector in the network.
type AntennaResponse = Detectors[AntennaPattern]

// Site is the vertex and arm orientation of an L-shaped interferometer.
// Latitude and longitude are geodetic; arm azimuths are measured from north
// towards east.
type Site struct {
	Name      string
	Latitude  float64
	Longitude float64
	XAzimuth  float64
	YAzimuth  float64
}

// Sites of the LIGO and Virgo interferometers.
var (
	LIGOHanford = Site{
		Name:      "H1",
		Latitude:  0.81079526383,
		Longitude: -2.08405676917,
		XAzimuth:  5.65487724844,
		YAzimuth:  4.08408092164,
	}
	LIGOLivingston = Site{
		Name:      "L1",
		Latitude:  0.53342313506,
		Longitude: -1.58430937078,
		XAzimuth:  4.40317772346,
		YAzimuth:  2.83238139666,
	}
	VirgoSite = Site{
		Name:      "V1",
		Latitude:  0.76151183984,
		Longitude: 0.18333805213,
		XAzimuth:  0.33916285222,
		YAzimuth:  5.05155183261,
	}
)

type vec3 [3]float64

type tensor3 [3]vec3

// tensor returns D = (x xᵀ - y yᵀ)/2 in Earth-fixed coordinates.
func (s Site) tensor() tensor3 {
	x := s.arm(s.XAzimuth)
	y := s.arm(s.YAzimuth)

	var d tensor3

	for i := range 3 {
		for j := range 3 {
			d[i][j] = 0.5 * (x[i]*x[j] - y[i]*y[j])
		}
	}

	return d
}

func (s Site) arm(azimuth float64) vec3 {
	sinLat, cosLat := math.Sincos(s.Latitude)
	sinLon, cosLon := math.Sincos(s.Longitude)
	sinAz, cosAz := math.Sincos(azimuth)

	east := vec3{-sinLon, cosLon, 0}
	north := vec3{-sinLat * cosLon, -sinLat * sinLon, cosLat}

	var u vec3
	for i := range 3 {
		u[i] = cosAz*north[i] + sinAz*east[i]
	}

	return u
}

func (d tensor3) contract(a, b vec3) float64 {
	var sum float64

	for i := range 3 {
		for j := range 3 {
			sum += a[i] * d[i][j] * b[j]
		}
	}

	return sum
}

// Response returns the antenna pattern of the site for a source at right
// ascension ra and declination dec, observed at t with polarisation angle psi.
func (s Site) Response(ra, dec float64, t time.Time, psi float64) AntennaPattern {
	gha := GMST(t) - ra

	sinGHA, cosGHA := math.Sincos(gha)
	sinDec, cosDec := math.Sincos(dec)
	sinPsi, cosPsi := math.Sincos(psi)

	x := vec3{
		-cosPsi*sinGHA - sinPsi*cosGHA*sinDec,
		-cosPsi*cosGHA + sinPsi*sinGHA*sinDec,
		sinPsi * cosDec,
	}
	y := vec3{
		sinPsi*sinGHA - cosPsi*cosGHA*sinDec,
		sinPsi*cosGHA + cosPsi*sinGHA*sinDec,
		cosPsi * cosDec,
	}

	d := s.tensor()

	return AntennaPattern{
		Plus:  d.contract(x, x) - d.contract(y, y),
		Cross: d.contract(x, y) + d.contract(y, x),
	}
}

// AntennaResponses evaluates the pattern of every detector in the network.
func AntennaResponses(ra, dec float64, t time.Time, psi float64) AntennaResponse {
	return Map(Detectors[struct{}]{}, func(s Site, _ struct{}) AntennaPattern {
		return s.Response(ra, dec, t, psi)
	})
}
