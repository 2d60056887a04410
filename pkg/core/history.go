package core

import "context"

// HistoryStore loads the recorded test class timings.
type HistoryStore interface {
	// Load returns the class timings of every build project that could be decoded.
	Load(ctx context.Context) (BuildProjectClassTimes, error)
}
