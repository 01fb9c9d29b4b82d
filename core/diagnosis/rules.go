package diagnosis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mgirardot/partpilot/core/model"
)

// ErrNoRule is returned when no rule covers a symptom combination. With
// the default table this is unreachable: maintenance is only flagged when
// at least one symptom is present.
var ErrNoRule = errors.New("no rule for symptom combination")

// Symptoms is the failure pattern observed on a vehicle.
type Symptoms struct {
	Overheating bool
	Vibrating   bool
}

// Rule names the part a failure pattern consumes and the human-readable
// reason reported to the caller.
type Rule struct {
	Part   model.PartID
	Reason string
}

// RuleTable resolves failure patterns to spare parts. Keying by the full
// symptom pair makes precedence structural: the both-flags entry always
// wins over either single-flag entry.
type RuleTable struct {
	rules map[Symptoms]Rule
}

// DefaultRules is the shipped symptom-to-part mapping.
func DefaultRules() map[Symptoms]Rule {
	return map[Symptoms]Rule{
		{Overheating: true, Vibrating: true}:  {Part: model.PartFilter, Reason: "major failure (heat + vibration)"},
		{Overheating: true, Vibrating: false}: {Part: model.PartEngineBelt, Reason: "overheating"},
		{Overheating: false, Vibrating: true}: {Part: model.PartBrakePad, Reason: "high vibration"},
	}
}

// NewRuleTable creates a table from the given rules, or the defaults when
// rules is empty.
func NewRuleTable(rules map[Symptoms]Rule) *RuleTable {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	cp := make(map[Symptoms]Rule, len(rules))
	for s, r := range rules {
		cp[s] = r
	}
	return &RuleTable{rules: cp}
}

// Diagnose maps the observed symptoms to a required part and reason.
func (t *RuleTable) Diagnose(overheating, vibrating bool) (Rule, error) {
	r, ok := t.rules[Symptoms{Overheating: overheating, Vibrating: vibrating}]
	if !ok {
		return Rule{}, fmt.Errorf("overheating=%v vibrating=%v: %w", overheating, vibrating, ErrNoRule)
	}
	return r, nil
}

// Parts lists every part the table can require, sorted for stable output.
// The service validates at startup that each one is seeded in the ledger.
func (t *RuleTable) Parts() []model.PartID {
	seen := map[model.PartID]struct{}{}
	var parts []model.PartID
	for _, r := range t.rules {
		if _, ok := seen[r.Part]; ok {
			continue
		}
		seen[r.Part] = struct{}{}
		parts = append(parts, r.Part)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })
	return parts
}
