package sky

import (
	"math"

	"astro-booking/internal/catalog"
)

// Link joins two stars of a constellation by index.
type Link struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ScreenStar struct {
	catalog.Star
	Point
	Size float64 `json:"size"`
}

// ConstellationView is a constellation laid out on a viewport, ready to draw.
type ConstellationView struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Mythology   string       `json:"mythology,omitempty"`
	Season      string       `json:"season,omitempty"`
	Hemisphere  string       `json:"hemisphere,omitempty"`
	Stars       []ScreenStar `json:"stars"`
	Connections []Link       `json:"connections"`
	Color       string       `json:"color"`
}

var colors = map[string]string{
	"Orion":      "#F59E0B",
	"Ursa Major": "#10B981",
	"Cassiopeia": "#EC4899",
	"Leo":        "#F59E0B",
}

const defaultColor = "#60A5FA"

// Layout projects every star of c with the default view centre. Brighter
// stars (lower magnitude) are drawn larger, never below 2.
func Layout(c catalog.Constellation, width, height float64) ConstellationView {
	stars := make([]ScreenStar, len(c.Stars))
	for i, s := range c.Stars {
		stars[i] = ScreenStar{
			Star:  s,
			Point: ConvertToScreenCoordinates(s.RA, s.Dec, width, height),
			Size:  math.Max(2, 6-s.Magnitude),
		}
	}

	color, ok := colors[c.Name]
	if !ok {
		color = defaultColor
	}

	return ConstellationView{
		Name:        c.Name,
		Description: c.Description,
		Mythology:   c.Mythology,
		Season:      c.Season,
		Hemisphere:  c.Hemisphere,
		Stars:       stars,
		Connections: connections(c.Name, len(stars)),
		Color:       color,
	}
}

// connections returns the stick figure of the known constellations.
func connections(name string, n int) []Link {
	links := []Link{}
	switch name {
	case "Orion":
		// Betelgeuse and Rigel to the belt, the belt itself, Bellatrix to Saiph.
		links = append(links, Link{0, 3}, Link{1, 3}, Link{3, 4}, Link{4, 5}, Link{2, 6})
	case "Ursa Major":
		for i := 0; i < n-1; i++ {
			links = append(links, Link{i, i + 1})
		}
		if n >= 4 {
			links = append(links, Link{3, 0}) // close the bowl
		}
	case "Cassiopeia":
		for i := 0; i < min(5, n-1); i++ {
			links = append(links, Link{i, i + 1})
		}
	case "Leo":
		for i := 0; i < min(4, n-1); i++ {
			links = append(links, Link{i, i + 1})
		}
		if n > 5 {
			links = append(links, Link{0, 5})
		}
	}
	return links
}
