// Package nasa reads the public NASA APOD and NeoWs feeds. Calls are made
// once per request: nothing is cached and failures are returned as-is.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DateLayout is the calendar date format the feeds use for query parameters.
const DateLayout = "2006-01-02"

type AstronomyPicture struct {
	Date           string `json:"date"`
	Explanation    string `json:"explanation"`
	HDURL          string `json:"hdurl,omitempty"`
	MediaType      string `json:"media_type"`
	ServiceVersion string `json:"service_version"`
	Title          string `json:"title"`
	URL            string `json:"url"`
}

type NearEarthObject struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	EstimatedDiameter    EstimatedDiameter `json:"estimated_diameter"`
	CloseApproachData    []CloseApproach   `json:"close_approach_data"`
	PotentiallyHazardous bool              `json:"is_potentially_hazardous_asteroid"`
}

type EstimatedDiameter struct {
	Kilometers struct {
		Min float64 `json:"estimated_diameter_min"`
		Max float64 `json:"estimated_diameter_max"`
	} `json:"kilometers"`
}

type CloseApproach struct {
	Date             string `json:"close_approach_date"`
	RelativeVelocity struct {
		KilometersPerHour string `json:"kilometers_per_hour"`
	} `json:"relative_velocity"`
	MissDistance struct {
		Kilometers string `json:"kilometers"`
	} `json:"miss_distance"`
}

type neoFeed struct {
	NearEarthObjects map[string][]NearEarthObject `json:"near_earth_objects"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client against baseURL (normally https://api.nasa.gov).
// The http.Client has no timeout of its own; callers bound requests with ctx.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, http: &http.Client{}}
}

// AstronomyPicture fetches the picture of the day. An empty date means today.
func (c *Client) AstronomyPicture(ctx context.Context, date string) (*AstronomyPicture, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var apod AstronomyPicture
	if err := c.get(ctx, "/planetary/apod", q, &apod); err != nil {
		return nil, err
	}
	return &apod, nil
}

// NearEarthObjects returns every object approaching between start and end,
// flattened out of the feed's per-day buckets in date order.
func (c *Client) NearEarthObjects(ctx context.Context, start, end time.Time) ([]NearEarthObject, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(DateLayout))
	q.Set("end_date", end.Format(DateLayout))

	var feed neoFeed
	if err := c.get(ctx, "/neo/rest/v1/feed", q, &feed); err != nil {
		return nil, err
	}

	objects := []NearEarthObject{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		objects = append(objects, feed.NearEarthObjects[day.Format(DateLayout)]...)
	}
	log.Printf("Received %d near-earth objects for %s..%s", len(objects), q.Get("start_date"), q.Get("end_date"))
	return objects, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NASA API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
