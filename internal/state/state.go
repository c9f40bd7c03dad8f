// Package state shares the latest decision between the daemon's decision
// loop and the read-only consumers (REST API, metrics collectors).
package state

import (
	"github.com/arrayfan/arrayfan/internal/engine"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const latestKey = "latest"

var decisions = cmap.New[engine.Decision]()

// SetLatestDecision stores the decision of the most recent run.
func SetLatestDecision(decision engine.Decision) {
	decisions.Set(latestKey, decision)
}

// LatestDecision returns the decision of the most recent run, if any run
// has completed yet.
func LatestDecision() (engine.Decision, bool) {
	return decisions.Get(latestKey)
}
