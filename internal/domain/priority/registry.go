package priority

// Resolved is the outcome of a registry lookup. UsedDefault is true
// when the requested name was unknown (or empty) and the registry fell
// back to SmartBalance, so callers can report the fallback instead of
// hiding it.
type Resolved struct {
	Strategy    Strategy
	UsedDefault bool
}

// The strategy set is closed: four known variants, one shared
// stateless instance each.
var strategies = map[string]Strategy{
	StrategySmartBalance:   SmartBalance{},
	StrategyFastestWins:    FastestWins{},
	StrategyHighImpact:     HighImpact{},
	StrategyDeadlineDriven: DeadlineDriven{},
}

// Resolve looks up a strategy by its canonical name. Unrecognized
// names, including the empty string, resolve to SmartBalance with
// UsedDefault set.
func Resolve(name string) Resolved {
	if s, ok := strategies[name]; ok {
		return Resolved{Strategy: s}
	}
	return Resolved{Strategy: SmartBalance{}, UsedDefault: true}
}

// Names returns the canonical strategy names in a stable order.
func Names() []string {
	return []string{
		StrategySmartBalance,
		StrategyFastestWins,
		StrategyHighImpact,
		StrategyDeadlineDriven,
	}
}
