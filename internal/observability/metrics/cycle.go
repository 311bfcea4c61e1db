// Package metrics provides standardised metric emission for sync cycles.
package metrics

import (
	"time"

	obserrors "github.com/taskmill/taskmill/internal/observability/errors"
	"github.com/taskmill/taskmill/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// CycleMetric captures details about one sync cycle for metric emission.
type CycleMetric struct {
	Result   string
	Created  int64
	Failed   int64
	Duration time.Duration
	Err      error
}

// EmitCycle emits the standard per-cycle metric set.
func EmitCycle(sink statsd.Sink, in CycleMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"result": in.Result,
	}
	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("sync.cycle", 1, tags)

	if in.Created > 0 {
		sink.Count("sync.tasks_created", in.Created, CloneTags(tags))
	}
	if in.Failed > 0 {
		sink.Count("sync.tasks_failed", in.Failed, CloneTags(tags))
	}
	if in.Duration > 0 {
		sink.Timing("sync.cycle_duration", in.Duration, CloneTags(tags))
	}
	if in.Err == nil {
		sink.Gauge("sync.last_success_epoch", float64(time.Now().Unix()), nil)
	}
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		dst[k] = v
	}
	return dst
}
