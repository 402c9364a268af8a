package labeler

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"labelkey/internal/domain"
)

const (
	// Collection and RecordKey locate the labeler declaration in the account repo.
	Collection = "app.bsky.labeler.service"
	RecordKey  = "self"
)

// Defaults applied to definitions that leave a field empty. Labels declared
// here are opt-in badges, not moderation.
const (
	DefaultSeverity       = "none"
	DefaultBlurs          = "none"
	DefaultDefaultSetting = "hide"
)

var labelValueRE = regexp.MustCompile(`^[a-z-]{1,100}$`)

// ServiceRecord is the app.bsky.labeler.service record.
type ServiceRecord struct {
	Type      string   `json:"$type"`
	Policies  Policies `json:"policies"`
	CreatedAt string   `json:"createdAt"`
}

// Policies lists the label values the labeler may emit.
type Policies struct {
	LabelValues           []string                 `json:"labelValues"`
	LabelValueDefinitions []domain.LabelDefinition `json:"labelValueDefinitions"`
}

// definitionsFile is the YAML layout accepted by LoadDefinitions.
type definitionsFile struct {
	Labels []domain.LabelDefinition `yaml:"labels"`
}

// LoadDefinitions reads label definitions from a YAML file of the form
//
//	labels:
//	  - identifier: fan-of-x
//	    locales:
//	      - {lang: en, name: X fans, description: Fan of X}
func LoadDefinitions(path string) ([]domain.LabelDefinition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f definitionsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Labels, nil
}

// BuildRecord validates definitions, fills defaults and returns the
// declaration record.
func BuildRecord(definitions []domain.LabelDefinition, now time.Time) (ServiceRecord, error) {
	if len(definitions) == 0 {
		return ServiceRecord{}, fmt.Errorf("no label definitions")
	}
	rec := ServiceRecord{
		Type:      Collection,
		CreatedAt: now.UTC().Format(time.RFC3339Nano),
		Policies: Policies{
			LabelValues:           make([]string, 0, len(definitions)),
			LabelValueDefinitions: make([]domain.LabelDefinition, 0, len(definitions)),
		},
	}
	seen := make(map[string]bool, len(definitions))
	for _, def := range definitions {
		if !labelValueRE.MatchString(def.Identifier) {
			return ServiceRecord{}, fmt.Errorf("label identifier %q must be 1-100 lowercase letters or dashes", def.Identifier)
		}
		if seen[def.Identifier] {
			return ServiceRecord{}, fmt.Errorf("duplicate label identifier %q", def.Identifier)
		}
		seen[def.Identifier] = true
		if len(def.Locales) == 0 {
			return ServiceRecord{}, fmt.Errorf("label %q has no locales", def.Identifier)
		}
		if def.Severity == "" {
			def.Severity = DefaultSeverity
		}
		if def.Blurs == "" {
			def.Blurs = DefaultBlurs
		}
		if def.DefaultSetting == "" {
			def.DefaultSetting = DefaultDefaultSetting
		}
		rec.Policies.LabelValues = append(rec.Policies.LabelValues, def.Identifier)
		rec.Policies.LabelValueDefinitions = append(rec.Policies.LabelValueDefinitions, def)
	}
	return rec, nil
}
