package server

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"astro-booking/internal/catalog"
	"astro-booking/internal/nasa"
	"astro-booking/internal/sky"
)

const (
	feedWindow       = 7 * 24 * time.Hour
	maxFeedEvents    = 3
	maxListedEvents  = 6
	feedFallbackNote = "Unable to fetch real-time NASA data. Showing scheduled astronomical events."
	feedImage        = "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"
)

// CelestialEvent is one card of the upcoming-events section.
type CelestialEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Image       string    `json:"image"`
	Target      time.Time `json:"targetDate"`
	Action      string    `json:"action"`
	Type        string    `json:"type"`
	Distance    string    `json:"distance,omitempty"`
	Velocity    string    `json:"velocity,omitempty"`
	IsNasaData  bool      `json:"isNasaData"`
	Countdown   string    `json:"countdown"`
}

type upcomingEventsResponse struct {
	Events  []CelestialEvent       `json:"events"`
	Picture *nasa.AstronomyPicture `json:"picture,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// AstronomyPictureHandler proxies the picture of the day. Feed failures are
// passed through as 502 with no retry.
func (s *Server) AstronomyPictureHandler(w http.ResponseWriter, r *http.Request) {
	apod, err := s.feed.AstronomyPicture(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		log.Printf("Error fetching astronomy picture: %v", err)
		writeError(w, http.StatusBadGateway, "Unable to fetch current astronomy data")
		return
	}
	writeJSON(w, http.StatusOK, apod)
}

// UpcomingEventsHandler lists near-earth approaches for the coming week
// ahead of the scheduled events. If either feed call fails, only the
// schedule is returned, with an explanatory error string.
func (s *Server) UpcomingEventsHandler(w http.ResponseWriter, r *http.Request) {
	now := s.now()

	var (
		neos []nasa.NearEarthObject
		apod *nasa.AstronomyPicture
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		neos, err = s.feed.NearEarthObjects(ctx, now, now.Add(feedWindow))
		return err
	})
	g.Go(func() (err error) {
		apod, err = s.feed.AstronomyPicture(ctx, "")
		return err
	})

	resp := upcomingEventsResponse{}
	if err := g.Wait(); err != nil {
		log.Printf("Error fetching celestial events: %v", err)
		resp.Error = feedFallbackNote
		resp.Events = scheduledCards(now)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	cards := feedCards(neos, now)
	cards = append(cards, scheduledCards(now)...)
	if len(cards) > maxListedEvents {
		cards = cards[:maxListedEvents]
	}
	resp.Events = cards
	resp.Picture = apod
	writeJSON(w, http.StatusOK, resp)
}

func feedCards(neos []nasa.NearEarthObject, now time.Time) []CelestialEvent {
	var cards []CelestialEvent
	for _, e := range nasa.ToEvents(neos, maxFeedEvents) {
		card := CelestialEvent{
			Title:       e.Title,
			Description: e.Description,
			Date:        e.EventDate.Format("Jan 2, 2006"),
			Time:        e.EventDate.Format("15:04"),
			Image:       feedImage,
			Target:      e.EventDate,
			Action:      "Track Object",
			Type:        e.EventType,
			IsNasaData:  true,
			Countdown:   sky.FormatCountdown(now, e.EventDate),
		}
		if meta, ok := nasa.Approach(e); ok {
			card.Distance = nasa.FormatKilometers(meta.MissDistance)
			card.Velocity = nasa.FormatVelocity(meta.Velocity)
		}
		cards = append(cards, card)
	}
	return cards
}

func scheduledCards(now time.Time) []CelestialEvent {
	scheduled := catalog.ScheduledEvents()
	cards := make([]CelestialEvent, 0, len(scheduled))
	for _, e := range scheduled {
		cards = append(cards, CelestialEvent{
			Title:       e.Title,
			Description: e.Description,
			Date:        e.Date,
			Time:        e.Time,
			Image:       e.Image,
			Target:      e.Target,
			Action:      e.Action,
			Type:        e.Type,
			Countdown:   sky.FormatCountdown(now, e.Target),
		})
	}
	return cards
}
