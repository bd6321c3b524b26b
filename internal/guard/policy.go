// Package guard gates access to AI-backed operations. It combines per-caller
// quota accounting, payload-size validation, and deadline enforcement into a
// single decision made before the expensive downstream call executes.
package guard

import "time"

// Window is the fixed accounting period for quota counters.
const Window = time.Minute

// Feature identifies one AI-backed operation protected by the guard.
type Feature string

const (
	FeatureAssistant Feature = "assistant"
	FeatureOptimizer Feature = "optimizer"
	FeatureTranslate Feature = "translate"
)

// Policy bundles the quota, size, and timeout limits for one feature.
// Policies are immutable after construction; distinct features keep
// independent quota bookkeeping.
type Policy struct {
	Feature          Feature
	MaxRequests      int           // Requests allowed per Window
	MaxPayloadChars  int           // Ceiling on the downstream payload length
	MaxResponseChars int           // Optional ceiling on the response text (0 = uncapped)
	Timeout          time.Duration // Upper bound on downstream processing time
}

// DefaultPolicies returns the per-feature limits. Values are product
// decisions: the assistant is conversational so more generous, optimization
// is the most expensive call, translation is fast.
func DefaultPolicies() map[Feature]Policy {
	return map[Feature]Policy{
		FeatureAssistant: {
			Feature:          FeatureAssistant,
			MaxRequests:      10,
			MaxPayloadChars:  5000,
			MaxResponseChars: 800,
			Timeout:          15 * time.Second,
		},
		FeatureOptimizer: {
			Feature:         FeatureOptimizer,
			MaxRequests:     5,
			MaxPayloadChars: 10000,
			Timeout:         30 * time.Second,
		},
		FeatureTranslate: {
			Feature:         FeatureTranslate,
			MaxRequests:     20,
			MaxPayloadChars: 5000,
			Timeout:         15 * time.Second,
		},
	}
}
