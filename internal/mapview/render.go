package mapview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Terrain color ramp, low elevation to high. Colors are blended in Luv
// space between adjacent stops for smooth shorelines and ridges.
var rampStops = []struct {
	elevation float64
	color     string
}{
	{0.00, "#0b2d52"}, // deep water
	{0.34, "#14508c"}, // water
	{0.42, "#2d7dbe"}, // shallows
	{0.46, "#c2b280"}, // sand
	{0.52, "#4c8a4c"}, // lowland
	{0.66, "#2f6b33"}, // forest
	{0.78, "#6e6a5e"}, // rock
	{0.90, "#d8d8d0"}, // snow
}

var markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
var selectedMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd75f")).Bold(true)

// View renders the visible terrain with markers overlaid.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	latSpan, lonSpan := m.span()
	top := m.cam.Lat + latSpan/2
	left := m.cam.Lon - lonSpan/2

	// Resolve marker screen positions first so cell rendering can
	// substitute the glyph.
	markerAt := make(map[[2]int]Marker, len(m.markers))
	for _, mk := range m.markers {
		x := int((mk.Lon - left) / lonSpan * float64(m.width))
		y := int((top - mk.Lat) / latSpan * float64(m.height))
		if x < 0 || x >= m.width || y < 0 || y >= m.height {
			continue
		}
		pos := [2]int{x, y}
		if prev, ok := markerAt[pos]; ok && prev.Selected {
			continue // selected marker wins the cell
		}
		markerAt[pos] = mk
	}

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		lat := top - (float64(y)+0.5)/float64(m.height)*latSpan
		for x := 0; x < m.width; x++ {
			lon := left + (float64(x)+0.5)/float64(m.width)*lonSpan
			bg := lipgloss.Color(m.terrainColor(lat, lon))

			if mk, ok := markerAt[[2]int{x, y}]; ok {
				style := markerStyle
				if mk.Selected {
					style = selectedMarkerStyle
				}
				b.WriteString(style.Background(bg).Render("●"))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Background(bg).Render(" "))
		}
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// terrainColor maps a world coordinate to a hex color via fractal value
// noise. Deterministic for a given seed.
func (m *Model) terrainColor(lat, lon float64) string {
	e := m.elevation(lat, lon)
	return blendRamp(e).Hex()
}

// elevation returns terrain height in [0, 1].
func (m *Model) elevation(lat, lon float64) float64 {
	const octaves = 3
	sum, amp, norm := 0.0, 1.0, 0.0
	freq := 0.25
	for i := 0; i < octaves; i++ {
		sum += amp * m.valueNoise(lon*freq, lat*freq, uint64(i))
		norm += amp
		amp *= 0.5
		freq *= 2.1
	}
	return sum / norm
}

// valueNoise is bilinear-interpolated hash noise over the lattice.
func (m *Model) valueNoise(x, y float64, octave uint64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0

	// Smoothstep the interpolants to avoid grid-aligned artifacts.
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	ix, iy := int64(x0), int64(y0)
	v00 := m.lattice(ix, iy, octave)
	v10 := m.lattice(ix+1, iy, octave)
	v01 := m.lattice(ix, iy+1, octave)
	v11 := m.lattice(ix+1, iy+1, octave)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

// lattice hashes an integer lattice point to [0, 1).
func (m *Model) lattice(x, y int64, octave uint64) float64 {
	h := m.seed ^ (octave * 0x9e3779b97f4a7c15)
	h ^= uint64(x) * 0xbf58476d1ce4e5b9
	h ^= uint64(y) * 0x94d049bb133111eb
	h ^= h >> 31
	h *= 0xd6e8feb86659fd93
	h ^= h >> 27
	return float64(h%1_000_003) / 1_000_003
}

// blendRamp interpolates the terrain ramp at the given elevation.
func blendRamp(e float64) colorful.Color {
	if e <= rampStops[0].elevation {
		return mustHex(rampStops[0].color)
	}
	for i := 1; i < len(rampStops); i++ {
		if e <= rampStops[i].elevation {
			lo, hi := rampStops[i-1], rampStops[i]
			t := (e - lo.elevation) / (hi.elevation - lo.elevation)
			return mustHex(lo.color).BlendLuv(mustHex(hi.color), t).Clamped()
		}
	}
	return mustHex(rampStops[len(rampStops)-1].color)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
