package diagnosis

import (
	"fmt"

	"github.com/mgirardot/partpilot/core/model"
)

// RuleConfig is one externally configured diagnostic rule. New symptom
// combinations map to new parts without code changes.
type RuleConfig struct {
	Overheating bool   `json:"overheating"`
	Vibrating   bool   `json:"vibrating"`
	Part        string `json:"part"`
	Reason      string `json:"reason"`
}

// TableFromConfig builds a RuleTable from configured rules. An empty list
// yields the default table; duplicate symptom pairs are rejected.
func TableFromConfig(rules []RuleConfig) (*RuleTable, error) {
	if len(rules) == 0 {
		return NewRuleTable(nil), nil
	}
	m := make(map[Symptoms]Rule, len(rules))
	for _, rc := range rules {
		if rc.Part == "" {
			return nil, fmt.Errorf("rule for overheating=%v vibrating=%v has no part", rc.Overheating, rc.Vibrating)
		}
		key := Symptoms{Overheating: rc.Overheating, Vibrating: rc.Vibrating}
		if _, dup := m[key]; dup {
			return nil, fmt.Errorf("duplicate rule for overheating=%v vibrating=%v", rc.Overheating, rc.Vibrating)
		}
		m[key] = Rule{Part: model.PartID(rc.Part), Reason: rc.Reason}
	}
	return NewRuleTable(m), nil
}
