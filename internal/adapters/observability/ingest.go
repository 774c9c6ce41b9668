package observability

import (
	"context"
	"errors"
	"time"

	"daypass/internal/domain"
)

type refresher interface {
	Refresh(ctx context.Context) (domain.HotelSnapshot, error)
}

// InstrumentedRefresher records run outcome, duration and snapshot size
// around any snapshot refresher.
type InstrumentedRefresher struct{ next refresher }

func Instrument(r refresher) *InstrumentedRefresher { return &InstrumentedRefresher{next: r} }

func (i *InstrumentedRefresher) Refresh(ctx context.Context) (domain.HotelSnapshot, error) {
	start := time.Now()
	snap, err := i.next.Refresh(ctx)
	ObserveIngest(snap, err, time.Since(start))
	return snap, err
}

func ObserveIngest(snap domain.HotelSnapshot, err error, dur time.Duration) {
	IngestLatency.Observe(dur.Seconds())
	switch {
	case errors.Is(err, domain.ErrNoSnapshot):
		IngestRuns.WithLabelValues("empty").Inc()
	case err != nil:
		IngestRuns.WithLabelValues("error").Inc()
	default:
		IngestRuns.WithLabelValues("ok").Inc()
		SnapshotHotels.Set(float64(len(snap.Hotels)))
		SnapshotFetched.Set(float64(snap.FetchedAt.Unix()))
	}
}
