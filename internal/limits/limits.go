// Package limits defines bounds and timing constants used throughout the
// application. These values are deliberately conservative: a scoped directory
// must either come into existence quickly or fail loudly, never hang.
package limits

import "time"

const (
	// NameAttempts is the maximum number of candidate directory names tried
	// before giving up on construction. Candidate names carry a random
	// 12-hex-character suffix, so a collision is already vanishingly rare;
	// ten attempts only ever matters when something else is squatting on the
	// temp root. This bound is fixed rather than configurable on purpose.
	NameAttempts = 10

	// ShutdownGrace is how long the runner waits after forwarding an
	// interrupt to the child process before killing it outright. The guard's
	// teardown runs only after the child is gone, since the child may still
	// be writing into the scoped directory.
	ShutdownGrace = 5 * time.Second
)
