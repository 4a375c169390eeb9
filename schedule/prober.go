package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/ralfmy/itv-roombot/rooms"
)

// FreeBusyMaxItems is the calendar provider's ceiling on resource identifiers
// per free/busy call. This is an external constraint, not a tunable.
const FreeBusyMaxItems = 25

// BusyInterval is a half-open busy range [Start, End) from a free/busy result.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// FreeBusyFunc issues a single free/busy call for at most FreeBusyMaxItems
// calendar identifiers.
type FreeBusyFunc func(ctx context.Context, start, end time.Time, emails []string) (map[string][]BusyInterval, error)

// Prober batches free/busy lookups across many rooms, working around the
// per-request resource ceiling.
type Prober struct {
	query FreeBusyFunc
}

func NewProber(query FreeBusyFunc) *Prober {
	return &Prober{query: query}
}

// Probe partitions the rooms into chunks of at most FreeBusyMaxItems, issues
// one provider call per chunk and merges the results keyed by room email.
// Chunks are dispatched concurrently; the merge is order-independent. The
// first chunk failure aborts the whole probe - a silently shrunken room set
// would be worse than an honest error.
func (p *Prober) Probe(ctx context.Context, window TimeWindow, list []rooms.Room) (map[string][]BusyInterval, error) {
	emails := rooms.Emails(list)
	merged := make(map[string][]BusyInterval, len(emails))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(emails); start += FreeBusyMaxItems {
		end := start + FreeBusyMaxItems
		if end > len(emails) {
			end = len(emails)
		}
		chunk := emails[start:end]

		wg.Add(1)
		go func() {
			defer wg.Done()
			busy, err := p.query(ctx, window.Start, window.End, chunk)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for email, intervals := range busy {
				merged[email] = SortIntervals(intervals)
			}
		}()
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return merged, nil
}
