// Package parse holds the lenient value parsers shared by the flattening
// pipeline. Every function is total: bad input yields the documented
// fallback, never an error.
package parse

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Int converts an int-like value to int64, falling back to def when the
// value cannot be read as a whole number. Floats truncate toward zero,
// matching the snapshot producer's behavior.
func Int(v interface{}, def int64) int64 {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
		return def
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return def
		}
		return i
	default:
		return def
	}
}

// Price reads a price that may be a plain number or currency text like
// "$1,234.50". Unreadable values come back as 0.0.
func Price(v interface{}) float64 {
	switch p := v.(type) {
	case nil:
		return 0.0
	case float32:
		return float64(p)
	case float64:
		return p
	case int:
		return float64(p)
	case int64:
		return float64(p)
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0.0
		}
		return f
	case string:
		s := strings.ReplaceAll(p, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}

// timestamp layouts seen in snapshots, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// Time coerces a timestamp-like value to *time.Time, nil when it cannot be
// read (absent dates stay null all the way into the final table).
func Time(v interface{}) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed
			}
		}
		return nil
	default:
		return nil
	}
}
