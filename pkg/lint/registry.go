package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// globalRegistry is the single global registry for all check rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered check rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by ID. The order is the
// evaluation order: stable across runs so repeated checks of the same file
// report findings identically.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByCategory returns all rules for a specific file category, sorted by ID.
// General rules are not included; callers that want the full applicable set
// for a file should use GetApplicable.
func GetByCategory(category core.FileCategory) []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.Category == category {
			rules = append(rules, rule)
		}
	}
	return rules
}

// GetApplicable returns the rules that apply to a classified target, sorted
// by ID: the rules of its category plus the general rules, filtered by
// production/test scope.
func GetApplicable(target Target) []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.Category != target.Category && rule.Category != core.CategoryGeneral {
			continue
		}
		if !rule.Scope.Applies(target.IsTest) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
