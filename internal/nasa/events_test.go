package nasa

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-booking/internal/models"
)

func neo(id, name, date string) NearEarthObject {
	n := NearEarthObject{ID: id, Name: name}
	n.EstimatedDiameter.Kilometers.Min = 0.1
	n.EstimatedDiameter.Kilometers.Max = 0.3
	if date != "" {
		a := CloseApproach{Date: date}
		a.MissDistance.Kilometers = "4567891.234"
		a.RelativeVelocity.KilometersPerHour = "48211.7"
		n.CloseApproachData = []CloseApproach{a}
	}
	return n
}

func TestToEvents(t *testing.T) {
	events := ToEvents([]NearEarthObject{
		neo("1", "(2026 AA)", "2026-10-18"),
		neo("2", "(2026 BB)", ""),
		neo("3", "(2026 CC)", "not-a-date"),
		neo("4", "(2026 DD)", "2026-10-19"),
	}, 0)

	require.Len(t, events, 2)
	e := events[0]
	assert.Equal(t, "Asteroid (2026 AA)", e.Title)
	assert.Equal(t, "A 0.2km asteroid passing 4,567,891 km from Earth", e.Description)
	assert.Equal(t, models.EventAsteroid, e.EventType)
	assert.True(t, e.IsNasaData)
	assert.Equal(t, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), e.EventDate)

	var meta ApproachMetadata
	require.NoError(t, json.Unmarshal(e.Metadata, &meta))
	assert.Equal(t, "1", meta.NeoID)
	assert.InDelta(t, 4567891.234, meta.MissDistance, 1e-6)
	assert.InDelta(t, 48211.7, meta.Velocity, 1e-6)
}

func TestToEvents_SkipsUnparsableFigures(t *testing.T) {
	badMiss := neo("1", "(2026 AA)", "2026-10-18")
	badMiss.CloseApproachData[0].MissDistance.Kilometers = "far"
	badVelocity := neo("2", "(2026 BB)", "2026-10-18")
	badVelocity.CloseApproachData[0].RelativeVelocity.KilometersPerHour = ""

	events := ToEvents([]NearEarthObject{badMiss, badVelocity, neo("3", "(2026 CC)", "2026-10-19")}, 0)

	require.Len(t, events, 1)
	assert.Equal(t, "Asteroid (2026 CC)", events[0].Title)
}

func TestToEvents_Limit(t *testing.T) {
	events := ToEvents([]NearEarthObject{
		neo("1", "a", "2026-10-18"),
		neo("2", "b", "2026-10-18"),
		neo("3", "c", "2026-10-18"),
		neo("4", "d", "2026-10-18"),
	}, 3)
	assert.Len(t, events, 3)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "4,567,891 km", FormatKilometers(4567891.234))
	assert.Equal(t, "48,212 km/h", FormatVelocity(48211.7))
}
