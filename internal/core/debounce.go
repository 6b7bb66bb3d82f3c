package core

// Debouncer turns a raw "button currently asserted" level into discrete
// press events. A candidate press is confirmed only if the level stays
// asserted across the confirm window; once confirmed, further presses are
// discarded until the level is observed released. The whole thing is a
// small state machine sampled once per tick, so the polling loop never
// blocks waiting for a release.
type Debouncer struct {
	confirmMs       int64
	candidate       bool
	candidateAtMs   int64
	awaitingRelease bool
}

// NewDebouncer creates a debouncer with the given confirm window.
func NewDebouncer(confirmMs int64) *Debouncer {
	return &Debouncer{confirmMs: confirmMs}
}

// Sample feeds the raw input level at the given elapsed time and reports
// whether a confirmed press fired on this sample.
func (d *Debouncer) Sample(asserted bool, nowMs int64) bool {
	if !asserted {
		d.candidate = false
		d.awaitingRelease = false
		return false
	}
	if d.awaitingRelease {
		return false
	}
	if !d.candidate {
		d.candidate = true
		d.candidateAtMs = nowMs
		return false
	}
	if nowMs-d.candidateAtMs >= d.confirmMs {
		d.candidate = false
		d.awaitingRelease = true
		return true
	}
	return false
}

// AwaitingRelease reports whether a confirmed press is still held.
func (d *Debouncer) AwaitingRelease() bool {
	return d.awaitingRelease
}
