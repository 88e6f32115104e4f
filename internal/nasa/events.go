package nasa

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"astro-booking/internal/models"
)

var printer = message.NewPrinter(language.English)

// ApproachMetadata is stored in the event's metadata column for feed imports.
type ApproachMetadata struct {
	Source        string  `json:"source"`
	NeoID         string  `json:"neoId"`
	Name          string  `json:"name"`
	ApproachDate  string  `json:"closeApproachDate"`
	MissDistance  float64 `json:"missDistanceKm"`
	Velocity      float64 `json:"velocityKph"`
	DiameterMinKm float64 `json:"diameterMinKm"`
	DiameterMaxKm float64 `json:"diameterMaxKm"`
	Hazardous     bool    `json:"hazardous"`
}

// ToEvents converts up to limit objects that have close-approach data into
// asteroid events flagged as NASA data. limit <= 0 converts all of them.
// Objects whose approach figures do not parse are skipped.
func ToEvents(neos []NearEarthObject, limit int) []models.NewEvent {
	events := []models.NewEvent{}
	for _, neo := range neos {
		if limit > 0 && len(events) >= limit {
			break
		}
		if len(neo.CloseApproachData) == 0 {
			continue
		}
		approach := neo.CloseApproachData[0]
		date, err := time.Parse(DateLayout, approach.Date)
		if err != nil {
			log.Printf("Error parsing close approach date for %s: %v", neo.ID, err)
			continue
		}

		miss, err := strconv.ParseFloat(approach.MissDistance.Kilometers, 64)
		if err != nil {
			log.Printf("Error parsing miss distance for %s: %v", neo.ID, err)
			continue
		}
		velocity, err := strconv.ParseFloat(approach.RelativeVelocity.KilometersPerHour, 64)
		if err != nil {
			log.Printf("Error parsing relative velocity for %s: %v", neo.ID, err)
			continue
		}
		d := neo.EstimatedDiameter.Kilometers

		meta, err := json.Marshal(ApproachMetadata{
			Source:        "nasa-neows",
			NeoID:         neo.ID,
			Name:          neo.Name,
			ApproachDate:  approach.Date,
			MissDistance:  miss,
			Velocity:      velocity,
			DiameterMinKm: d.Min,
			DiameterMaxKm: d.Max,
			Hazardous:     neo.PotentiallyHazardous,
		})
		if err != nil {
			log.Printf("Error encoding metadata for %s: %v", neo.ID, err)
			continue
		}

		events = append(events, models.NewEvent{
			Title:       "Asteroid " + neo.Name,
			Description: printer.Sprintf("A %.1fkm asteroid passing %.0f km from Earth", (d.Min+d.Max)/2, miss),
			EventDate:   date,
			EventType:   models.EventAsteroid,
			IsNasaData:  true,
			Metadata:    meta,
		})
	}
	return events
}

// FormatKilometers renders a distance like "4,567,891 km".
func FormatKilometers(km float64) string {
	return printer.Sprintf("%.0f km", km)
}

// FormatVelocity renders a speed like "48,211 km/h".
func FormatVelocity(kph float64) string {
	return printer.Sprintf("%.0f km/h", kph)
}

// Approach decodes the metadata ToEvents attached to e.
func Approach(e models.NewEvent) (ApproachMetadata, bool) {
	var meta ApproachMetadata
	if len(e.Metadata) == 0 || json.Unmarshal(e.Metadata, &meta) != nil {
		return ApproachMetadata{}, false
	}
	return meta, meta.Source == "nasa-neows"
}
