package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Report adds the report kind (adoption, ratings, subjects).
func Report(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("report", name)
	}
}

// Kind adds a chart kind.
func Kind(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart", kind)
	}
}

// Panels adds the number of panels in a figure.
func Panels(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("panels", n)
	}
}

// Categories adds the number of response categories.
func Categories(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("categories", n)
	}
}

// Duration adds a duration in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// RequestID adds the HTTP request id.
func RequestID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("request_id", id)
	}
}

// Cached reports whether a result came from cache.
func Cached(cached bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("cached", cached)
	}
}

// Status adds an HTTP status code.
func Status(code int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("status", code)
	}
}

// ErrorField adds err, or nothing when err is nil.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with a custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
