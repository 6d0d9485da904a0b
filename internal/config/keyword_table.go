// Package config provides the static keyword taxonomy and bias rule set the
// engine scores against. Both are immutable after load: treated as
// configuration, never learned from data.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-match-engine/internal/types"
)

// KeywordTable is a two-tier weighted keyword dictionary. Critical keywords
// are must-have technical terms; general keywords are broadly positive
// resume language. Keywords are written in normalized form (see the
// normalize package), so "vpn" appears as "virtual private network".
type KeywordTable struct {
	Critical map[string]float64 `json:"critical" validate:"min=1,dive,gte=0"`
	General  map[string]float64 `json:"general" validate:"min=1,dive,gte=0"`
}

// WeightedKeyword pairs a keyword with its weight and tier for iteration in
// a deterministic order.
type WeightedKeyword struct {
	Keyword string
	Weight  float64
	Tier    types.KeywordTier
}

// DefaultKeywordTable returns the built-in IT support keyword taxonomy.
func DefaultKeywordTable() *KeywordTable {
	return &KeywordTable{
		Critical: map[string]float64{
			"active directory":        15,
			"help desk":               12,
			"windows server":          12,
			"windows":                 10,
			"office 365":              10,
			"troubleshooting":         10,
			"technical support":       10,
			"servicenow":              8,
			"itil":                    8,
			"azure":                   8,
			"intune":                  8,
			"ticketing":               8,
			"sccm":                    7,
			"networking":              7,
			"dns":                     6,
			"dhcp":                    6,
			"virtual private network": 6,
			"remote desktop protocol": 6,
			"hardware":                6,
		},
		General: map[string]float64{
			"customer service": 5,
			"problem solving":  5,
			"communication":    4,
			"documentation":    4,
			"escalation":       4,
			"imaging":          4,
			"remote support":   4,
			"teamwork":         3,
			"training":         3,
			"onboarding":       3,
			"collaboration":    3,
			"printers":         3,
			"time management":  2,
			"multitasking":     2,
			"inventory":        2,
		},
	}
}

// LoadKeywordTable reads a keyword table from a JSON file and validates it.
func LoadKeywordTable(path string) (*KeywordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword table %s: %w", path, err)
	}

	var table KeywordTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &ConfigurationError{Message: "keyword table is not valid JSON", Field: path, Cause: err}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks the structural invariants of the table: both tiers
// non-empty, all weights non-negative, no blank keywords.
func (t *KeywordTable) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return &ConfigurationError{
			Message: "keyword table must have non-empty tiers with non-negative weights",
			Cause:   err,
		}
	}
	for tier, keywords := range map[string]map[string]float64{"critical": t.Critical, "general": t.General} {
		for kw, weight := range keywords {
			if kw == "" {
				return &ConfigurationError{Message: "blank keyword", Field: tier}
			}
			if weight < 0 {
				return &ConfigurationError{
					Message: fmt.Sprintf("negative weight %v for keyword %q", weight, kw),
					Field:   tier,
				}
			}
		}
	}
	return nil
}

// CriticalKeywords returns the critical tier sorted by weight descending,
// keyword ascending on ties.
func (t *KeywordTable) CriticalKeywords() []WeightedKeyword {
	return sortedKeywords(t.Critical, types.TierCritical)
}

// GeneralKeywords returns the general tier sorted by weight descending,
// keyword ascending on ties.
func (t *KeywordTable) GeneralKeywords() []WeightedKeyword {
	return sortedKeywords(t.General, types.TierGeneral)
}

// AllKeywords returns both tiers combined, sorted by weight descending,
// keyword ascending on ties.
func (t *KeywordTable) AllKeywords() []WeightedKeyword {
	all := append(t.CriticalKeywords(), t.GeneralKeywords()...)
	sortByWeight(all)
	return all
}

func sortedKeywords(m map[string]float64, tier types.KeywordTier) []WeightedKeyword {
	out := make([]WeightedKeyword, 0, len(m))
	for kw, weight := range m {
		out = append(out, WeightedKeyword{Keyword: kw, Weight: weight, Tier: tier})
	}
	sortByWeight(out)
	return out
}

func sortByWeight(kws []WeightedKeyword) {
	sort.Slice(kws, func(i, j int) bool {
		if kws[i].Weight != kws[j].Weight {
			return kws[i].Weight > kws[j].Weight
		}
		return kws[i].Keyword < kws[j].Keyword
	})
}
