// Package progress defines the progress messages exchanged between the
// benchmark producers (harness sweep, compare mode) and the displays that
// consume them (CLI spinner, dashboard).
package progress

// ProgressUpdate reports that task Index reached Value, in [0, 1].
type ProgressUpdate struct {
	Index int
	Value float64
}

// ProgressCallback receives the progress of a single task.
type ProgressCallback func(value float64)

// NewChannelCallback returns a callback that forwards values for task index
// to ch. Intermediate updates are dropped when ch is full so that a slow
// display never stalls a measurement; the final update (value >= 1) is
// always delivered. A nil channel yields a no-op callback.
func NewChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(value float64) {
		u := ProgressUpdate{Index: index, Value: value}
		if value >= 1 {
			ch <- u
			return
		}
		select {
		case ch <- u:
		default:
		}
	}
}

// Fraction returns done/total clamped to [0, 1]; a non-positive total
// counts as complete.
func Fraction(done, total int) float64 {
	if total <= 0 || done >= total {
		return 1
	}
	if done <= 0 {
		return 0
	}
	return float64(done) / float64(total)
}
