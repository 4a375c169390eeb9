// Package occupancy infers room occupancy from environmental sensor readings
// stored in a BigQuery warehouse.
package occupancy

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/ralfmy/itv-roombot/logger"
)

// Reading is one sensor sample for a room.
type Reading struct {
	Room        string `bigquery:"room"`
	Temperature int64  `bigquery:"temperature"`
	Humidity    int64  `bigquery:"humidity"`
	Motion      int64  `bigquery:"motion"`
}

// SensorStore reads recent sensor samples for a room.
//
//go:generate mockgen -source=occupancy.go -destination=../tests/mocks/occupancy.go -package=mocks
type SensorStore interface {
	// ReadingsSince returns samples for the room taken after the given
	// instant. The warehouse stores UTC date and time columns.
	ReadingsSince(ctx context.Context, room string, since time.Time) ([]Reading, error)
}

// BigQueryStore queries the sensor table.
type BigQueryStore struct {
	client   *bigquery.Client
	table    string
	location string
	logger   logger.Logger
}

func NewBigQueryStore(ctx context.Context, projectID, table, location string, log logger.Logger) (*BigQueryStore, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &BigQueryStore{
		client:   client,
		table:    table,
		location: location,
		logger:   log,
	}, nil
}

func (s *BigQueryStore) ReadingsSince(ctx context.Context, room string, since time.Time) ([]Reading, error) {
	utc := since.UTC()
	query := s.client.Query(fmt.Sprintf(
		"SELECT room, temperature, humidity, motion FROM `%s` WHERE room = @room AND date = @date AND time > @time",
		s.table,
	))
	query.Location = s.location
	query.Parameters = []bigquery.QueryParameter{
		{Name: "room", Value: room},
		{Name: "date", Value: utc.Format("2006-01-02")},
		{Name: "time", Value: utc.Format("15:04:05")},
	}

	s.logger.Debug("querying sensor readings", "room", room, "since", utc)
	it, err := query.Read(ctx)
	if err != nil {
		s.logger.Error("sensor query failed", err, "room", room)
		return nil, fmt.Errorf("sensor query: %w", err)
	}

	var readings []Reading
	for {
		var r Reading
		err := it.Next(&r)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sensor row: %w", err)
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// Motion-sample thresholds for the combined branch of the heuristic. The
// recolor job wants a few more motion hits before marking a booked room as
// occupied; an occupancy question answers on less.
const (
	queryMotionThreshold   = 3
	recolorMotionThreshold = 5
)

// Occupied applies the sensor heuristic: a spread in temperature and humidity
// combined with some motion, or a large spread in either humidity or motion
// alone, suggests someone is in the room.
func Occupied(readings []Reading) bool {
	return occupied(readings, queryMotionThreshold)
}

func occupied(readings []Reading, motionThreshold int) bool {
	if len(readings) == 0 {
		return false
	}

	var temps, hums []int64
	var motion int
	for _, r := range readings {
		temps = append(temps, r.Temperature)
		hums = append(hums, r.Humidity)
		if r.Motion == 1 {
			motion++
		}
	}

	tempRange := rangeOf(temps)
	humRange := rangeOf(hums)

	return (tempRange > 2 && humRange > 5 && motion > motionThreshold) || humRange > 10 || motion > 20
}

func rangeOf(values []int64) int64 {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
