// Package catalog holds the static tables shown on the site: services,
// membership plans, constellations and the fallback event schedule.
// Accessors return copies; the package-level tables are never mutated.
package catalog

import "time"

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Subtitle string   `json:"subtitle"`
	Price    int      `json:"price"` // dollars per month
	Features []string `json:"features"`
	Featured bool     `json:"featured"`
}

type Star struct {
	Name      string  `json:"name"`
	RA        float64 `json:"ra"`  // degrees
	Dec       float64 `json:"dec"` // degrees
	Magnitude float64 `json:"magnitude"`
}

type Constellation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Mythology   string `json:"mythology,omitempty"`
	Season      string `json:"season,omitempty"`
	Hemisphere  string `json:"hemisphere,omitempty"`
	Stars       []Star `json:"stars"`
}

// ScheduledEvent is a hand-curated sky event used when the live feed is unavailable.
type ScheduledEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Image       string    `json:"image"`
	Target      time.Time `json:"targetDate"`
	Action      string    `json:"action"`
	Type        string    `json:"type"`
}

const (
	imageNightSky = "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"
	imageEarth    = "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"
	imageEvent    = "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"
)

var services = []Service{
	{
		ID:          "guided-tours",
		Title:       "Guided Stargazing Tours",
		Description: "On-site stargazing sessions at observatories and dark-sky sites conducted by certified astronomy guides.",
		Price:       "From $75",
		Image:       imageNightSky,
		Features:    []string{"Observatory & dark-sky locations", "Certified astronomy guides", "Laser pointer tours & storytelling"},
	},
	{
		ID:          "astrophotography",
		Title:       "Astrophotography Sessions",
		Description: "Personalized astrophotography shoots with training workshops for amateur photographers.",
		Price:       "From $120",
		Image:       imageNightSky,
		Features:    []string{"Personalized photo sessions", "Digital & printed frames", "Training workshops included"},
	},
	{
		ID:          "live-streams",
		Title:       "Live Celestial Event Streams",
		Description: "Real-time streaming of eclipses, meteor showers, and planetary conjunctions with expert commentary.",
		Price:       "From $35",
		Image:       imageEarth,
		Features:    []string{"Major celestial events live", "Global access for subscribers", "Expert commentary & Q&A"},
	},
	{
		ID:          "webinars",
		Title:       "Educational Webinars",
		Description: "Online and offline learning modules covering telescope handling, astrophysics, and night-sky navigation.",
		Price:       "From $45",
		Image:       imageNightSky,
		Features:    []string{"Online & offline modules", "Telescope handling & astrophysics", "For students & enthusiasts"},
	},
}

var plans = []Plan{
	{
		ID:       "stargazer",
		Name:     "Stargazer",
		Subtitle: "Monthly subscription for casual astronomy enthusiasts",
		Price:    29,
		Features: []string{
			"Early booking access to tours",
			"Basic educational webinars",
			"Mobile constellation app",
			"Community forum access",
			"Email support",
			"Monthly astrophotography wallpapers",
		},
	},
	{
		ID:       "explorer",
		Name:     "Explorer",
		Subtitle: "Enhanced benefits for dedicated sky watchers",
		Price:    59,
		Features: []string{
			"All Stargazer benefits",
			"Priority booking access",
			"Exclusive live stream events",
			"Advanced webinar modules",
			"Discounted astrophotography sessions",
			"High-resolution image downloads",
		},
		Featured: true,
	},
	{
		ID:       "cosmic_pro",
		Name:     "Cosmic Pro",
		Subtitle: "Annual membership with premium perks and exclusive access",
		Price:    99,
		Features: []string{
			"All Explorer benefits",
			"Maximum booking priority",
			"Private celestial event streams",
			"Professional astrophotography discounts",
			"Expert 1-on-1 consultations",
			"Annual printed astrophotography calendar",
		},
	},
}

var constellations = []Constellation{
	{
		Name:        "Orion",
		Description: "The Hunter constellation, one of the most recognizable patterns in the night sky. Contains the famous Orion Nebula (M42).",
		Mythology:   "In Greek mythology, Orion was a great hunter. The constellation represents Orion facing Taurus the Bull.",
		Season:      "Winter",
		Hemisphere:  "Both",
		Stars: []Star{
			{Name: "Betelgeuse", RA: 88.8, Dec: 7.4, Magnitude: 0.5},
			{Name: "Rigel", RA: 78.6, Dec: -8.2, Magnitude: 0.1},
			{Name: "Bellatrix", RA: 81.3, Dec: 6.3, Magnitude: 1.6},
			{Name: "Mintaka", RA: 83.0, Dec: -0.3, Magnitude: 2.2},
			{Name: "Alnilam", RA: 84.1, Dec: -1.2, Magnitude: 1.7},
			{Name: "Alnitak", RA: 85.2, Dec: -1.9, Magnitude: 1.8},
			{Name: "Saiph", RA: 86.9, Dec: -9.7, Magnitude: 2.1},
		},
	},
	{
		Name:        "Ursa Major",
		Description: "The Great Bear, containing the famous Big Dipper asterism. Used for navigation as it points to Polaris.",
		Mythology:   "In Greek mythology, this represents Callisto, who was transformed into a bear by Zeus's jealous wife Hera.",
		Season:      "Spring",
		Hemisphere:  "Northern",
		Stars: []Star{
			{Name: "Dubhe", RA: 165.9, Dec: 61.8, Magnitude: 1.8},
			{Name: "Merak", RA: 165.5, Dec: 56.4, Magnitude: 2.3},
			{Name: "Phecda", RA: 178.5, Dec: 53.7, Magnitude: 2.4},
			{Name: "Megrez", RA: 183.9, Dec: 57.0, Magnitude: 3.3},
			{Name: "Alioth", RA: 193.5, Dec: 55.9, Magnitude: 1.8},
			{Name: "Mizar", RA: 200.9, Dec: 54.9, Magnitude: 2.3},
			{Name: "Alkaid", RA: 206.9, Dec: 49.3, Magnitude: 1.9},
		},
	},
	{
		Name:        "Cassiopeia",
		Description: "The Queen constellation, forming a distinctive 'W' shape. Contains several star clusters and nebulae.",
		Mythology:   "Named after the vain queen Cassiopeia in Greek mythology, who boasted about her beauty.",
		Season:      "Autumn",
		Hemisphere:  "Northern",
		Stars: []Star{
			{Name: "Caph", RA: 9.2, Dec: 59.1, Magnitude: 2.3},
			{Name: "Schedar", RA: 10.1, Dec: 56.5, Magnitude: 2.2},
			{Name: "Gamma Cassiopeiae", RA: 14.2, Dec: 60.7, Magnitude: 2.5},
			{Name: "Ruchbah", RA: 22.8, Dec: 57.8, Magnitude: 2.7},
			{Name: "Segin", RA: 25.7, Dec: 63.7, Magnitude: 3.4},
		},
	},
	{
		Name:        "Leo",
		Description: "The Lion constellation, featuring the bright star Regulus. Best visible in spring evenings.",
		Mythology:   "Represents the Nemean Lion killed by Hercules as his first labor.",
		Season:      "Spring",
		Hemisphere:  "Both",
		Stars: []Star{
			{Name: "Regulus", RA: 152.1, Dec: 11.9, Magnitude: 1.4},
			{Name: "Denebola", RA: 177.3, Dec: 14.6, Magnitude: 2.1},
			{Name: "Algieba", RA: 154.9, Dec: 19.8, Magnitude: 2.6},
			{Name: "Zosma", RA: 169.6, Dec: 20.5, Magnitude: 2.6},
			{Name: "Ras Elased Australis", RA: 149.1, Dec: 23.8, Magnitude: 2.9},
			{Name: "Adhafera", RA: 156.5, Dec: 23.4, Magnitude: 3.4},
		},
	},
}

var scheduledEvents = []ScheduledEvent{
	{
		Title:       "Lunar Eclipse",
		Description: "Witness the Moon turn red as it passes through Earth's shadow",
		Date:        "Dec 15, 2024",
		Time:        "21:30 - 23:45",
		Image:       imageEvent,
		Target:      time.Date(2024, time.December, 15, 21, 30, 0, 0, time.UTC),
		Action:      "Set Reminder",
		Type:        "eclipse",
	},
	{
		Title:       "Geminids Meteor Shower",
		Description: "Peak viewing of one of the year's most spectacular meteor showers",
		Date:        "Dec 13-14, 2024",
		Time:        "22:00 - 04:00",
		Image:       imageEvent,
		Target:      time.Date(2024, time.December, 13, 22, 0, 0, 0, time.UTC),
		Action:      "Join Live Stream",
		Type:        "meteor",
	},
	{
		Title:       "Saturn Opposition",
		Description: "Perfect time to observe Saturn's rings in stunning detail",
		Date:        "Dec 20, 2024",
		Time:        "20:00 - 02:00",
		Image:       imageEvent,
		Target:      time.Date(2024, time.December, 20, 20, 0, 0, 0, time.UTC),
		Action:      "Book Tour",
		Type:        "planetary",
	},
}

func Services() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		s.Features = append([]string(nil), s.Features...)
		out[i] = s
	}
	return out
}

// ServiceByID looks up a bookable service by its form value, e.g. "guided-tours".
func ServiceByID(id string) (Service, bool) {
	for _, s := range Services() {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func Constellations() []Constellation {
	out := make([]Constellation, len(constellations))
	for i, c := range constellations {
		c.Stars = append([]Star(nil), c.Stars...)
		out[i] = c
	}
	return out
}

// ConstellationByName is case-sensitive, matching the favorite item ids.
func ConstellationByName(name string) (Constellation, bool) {
	for _, c := range Constellations() {
		if c.Name == name {
			return c, true
		}
	}
	return Constellation{}, false
}

func ScheduledEvents() []ScheduledEvent {
	return append([]ScheduledEvent(nil), scheduledEvents...)
}
