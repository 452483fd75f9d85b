package stats

import (
	"fmt"
	"io"
	"time"
)

// QueryEvent records metadata about a single stats service call.
type QueryEvent struct {
	QueryID   string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about stats calls for logging and diagnostics.
type Observer interface {
	OnQueryComplete(event QueryEvent)
}

// LogObserver writes stats call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnQueryComplete(event QueryEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] stats_query id=%s latency_ms=%d status=%s\n",
		ts, event.QueryID, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnQueryComplete(QueryEvent) {}
