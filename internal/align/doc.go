// Package align registers a set of scans into the frame of the first one.
// It grows the registered set breadth-first from scan 0: every newly
// registered scan becomes an anchor that the still-unregistered scans are
// matched against. Scans that never match are reported, not dropped.
package align
