package types

// LabelLocale is a localized name and description of a label value.
type LabelLocale struct {
	Lang        string `json:"lang" yaml:"lang"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// LabelDefinition declares one label value published by the labeler.
type LabelDefinition struct {
	Identifier     string        `json:"identifier" yaml:"identifier"`
	Severity       string        `json:"severity" yaml:"severity"`
	Blurs          string        `json:"blurs" yaml:"blurs"`
	DefaultSetting string        `json:"defaultSetting,omitempty" yaml:"defaultSetting"`
	AdultOnly      bool          `json:"adultOnly" yaml:"adultOnly"`
	Locales        []LabelLocale `json:"locales" yaml:"locales"`
}
