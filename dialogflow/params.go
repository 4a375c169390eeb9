package dialogflow

import (
	"strconv"
	"strings"

	"github.com/ralfmy/itv-roombot/booking"
	"github.com/ralfmy/itv-roombot/schedule"
)

// Params is the loosely typed parameter map Dialogflow fills from NLU slots.
// Values arrive as strings, numbers, lists or nested objects depending on the
// entity type, so every accessor tolerates absence and the empty string.
type Params map[string]interface{}

// String returns the parameter as a string, or "" when absent or non-string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// StringList returns a list parameter. Single string values are promoted to a
// one-element list, matching how Dialogflow serialises optional list slots.
func (p Params) StringList(key string) []string {
	switch v := p[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Number returns a numeric parameter. Dialogflow sends @sys.number as a JSON
// number but composite entities sometimes carry it as a string.
func (p Params) Number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case string:
		if v == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Date returns the calendar-date part of a @sys.date parameter
// ("2024-06-10T12:00:00+01:00" becomes "2024-06-10"), or "".
func (p Params) Date(key string) string {
	return datePart(p.String(key))
}

// Time returns the wall-clock part of a @sys.time parameter
// ("2024-06-10T15:00:00+01:00" becomes "15:00:00"), or "".
func (p Params) Time(key string) string {
	return clockPart(p.String(key))
}

// Period unpacks a @sys.time-period parameter into its start and end clock
// times. Returns nil when the slot is empty.
func (p Params) Period(key string) *schedule.Period {
	m, ok := p[key].(map[string]interface{})
	if !ok {
		return nil
	}
	start, _ := m["startTime"].(string)
	end, _ := m["endTime"].(string)
	if start == "" || end == "" {
		return nil
	}
	return &schedule.Period{Start: clockPart(start), End: clockPart(end)}
}

// Duration unpacks a @sys.duration parameter ({"amount": 30, "unit": "min"}).
func (p Params) Duration(key string) *booking.Duration {
	m, ok := p[key].(map[string]interface{})
	if !ok {
		return nil
	}
	amount, ok := m["amount"].(float64)
	if !ok {
		return nil
	}
	unit, _ := m["unit"].(string)
	return &booking.Duration{Amount: amount, Unit: unit}
}

func datePart(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func clockPart(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[i+1:]
	}
	// Drop any zone offset, keeping hh:mm:ss.
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
