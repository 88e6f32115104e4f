package sky

import (
	"context"
	"fmt"
	"time"
)

// EventStarted replaces the countdown once the target time is reached.
const EventStarted = "Event Started!"

// DefaultInterval is how often a running countdown is recomputed.
const DefaultInterval = time.Minute

// FormatCountdown renders the time left until target as "3d 04h 09m".
func FormatCountdown(now, target time.Time) string {
	left := target.Sub(now)
	if left <= 0 {
		return EventStarted
	}
	days := int(left / (24 * time.Hour))
	hours := int(left % (24 * time.Hour) / time.Hour)
	minutes := int(left % time.Hour / time.Minute)
	return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
}

// Countdown emits the formatted time left right away and then every interval.
// After it emits EventStarted, or when ctx is done, it stops its ticker and
// closes the channel. now may be nil, in which case time.Now is used.
func Countdown(ctx context.Context, target time.Time, interval time.Duration, now func() time.Time) <-chan string {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			s := FormatCountdown(now(), target)
			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
			if s == EventStarted {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
