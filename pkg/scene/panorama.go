package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"orrery/pkg/render"
)

// Panorama is an equirectangular background image sampled by view
// direction. Longitude wraps; latitude clamps at the poles.
type Panorama struct {
	img    image.Image
	bounds image.Rectangle
}

// NewPanorama wraps an already-decoded image.
func NewPanorama(img image.Image) *Panorama {
	return &Panorama{img: img, bounds: img.Bounds()}
}

// LoadPanorama reads a PNG or JPEG panorama from disk.
func LoadPanorama(path string) (*Panorama, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open panorama: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode panorama %q: %w", path, err)
	}
	return &Panorama{img: img, bounds: img.Bounds()}, nil
}

// Sample maps a view direction in degrees (lon in [-180, 180), lat in
// [-90, 90)) to the image.
func (p *Panorama) Sample(lon, lat float64) render.Color {
	u := (lon + 180) / 360
	v := (lat + 90) / 180
	u -= math.Floor(u)
	v = math.Max(0, math.Min(1, v))

	w := p.bounds.Dx()
	h := p.bounds.Dy()
	x := p.bounds.Min.X + min(int(u*float64(w)), w-1)
	y := p.bounds.Min.Y + min(int(v*float64(h)), h-1)

	r, g, b, _ := p.img.At(x, y).RGBA()
	return render.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Starfield is the procedural fallback background: sparse noise-thresholded
// stars over black, used when no panorama file is configured.
type Starfield struct {
	noise render.NoiseSource
}

// NewStarfield creates a starfield over the given noise source.
func NewStarfield(noise render.NoiseSource) *Starfield {
	return &Starfield{noise: noise}
}

// Sample returns a star color where high-frequency noise spikes, black
// elsewhere.
func (s *Starfield) Sample(lon, lat float64) render.Color {
	v := s.noise.Noise2D(lon*40, lat*40)
	if v < 0.75 {
		return render.Black
	}
	// Brightness ramps with the spike height.
	return render.White.Scale((v - 0.75) * 4)
}
