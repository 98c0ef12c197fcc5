package query

import "github.com/chartdeck/chartdeck/internal/store"

// Defaults flattens a chart's variable declarations into a parameter map
// of key -> default value. A key declared twice keeps the later default.
func Defaults(vars []store.Variable) map[string]any {
	params := make(map[string]any, len(vars))
	for _, v := range vars {
		params[v.Key] = v.Default
	}
	return params
}

// MergeParams layers caller-supplied overrides on top of defaults.
// Overrides win on key collision. Neither input map is mutated.
func MergeParams(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
