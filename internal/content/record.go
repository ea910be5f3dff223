// Package content resolves the per-locale content record of each
// documentation page.
//
// Records are data: one YAML file per (page, locale) under pages/, decoded
// and validated once at load. Resolution is total. A locale that is
// unsupported, or supported but not authored for a page, is served the whole
// English record; fields are never merged across locales.
package content

import (
	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
)

// SectionKind tags the entry shape carried by a section.
type SectionKind string

const (
	KindCommands SectionKind = "commands"
	KindSettings SectionKind = "settings"
	KindSteps    SectionKind = "steps"
	KindEnvVars  SectionKind = "envvars"
	KindCards    SectionKind = "cards"
	KindCode     SectionKind = "code"
	KindLinks    SectionKind = "links"
)

// Kinds lists every known section kind.
func Kinds() []SectionKind {
	return []SectionKind{KindCommands, KindSettings, KindSteps, KindEnvVars, KindCards, KindCode, KindLinks}
}

// Record is the fully resolved content of one page in one locale.
type Record struct {
	Page     string              `json:"page"`
	Locale   platformi18n.Locale `json:"locale"`
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle"`
	Intro    string              `json:"intro,omitempty"`
	Labels   Labels              `json:"labels"`
	Sections []Section           `json:"sections"`
}

// Labels carries the column headers and boolean words a renderer needs.
type Labels struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Key         string `json:"key"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Options     string `json:"options"`
	Required    string `json:"required"`
	Example     string `json:"example"`
	Name        string `json:"name"`
	Yes         string `json:"yes"`
	No          string `json:"no"`
}

// Section is an ordered group of entries sharing one shape. Exactly the entry
// list matching Kind is populated.
type Section struct {
	ID          string      `json:"id" yaml:"id"`
	Kind        SectionKind `json:"kind" yaml:"kind"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description"`

	Commands []CommandEntry `json:"commands,omitempty" yaml:"commands"`
	Settings []SettingEntry `json:"settings,omitempty" yaml:"settings"`
	Steps    []StepEntry    `json:"steps,omitempty" yaml:"steps"`
	EnvVars  []EnvVarEntry  `json:"envVars,omitempty" yaml:"envVars"`
	Cards    []CardEntry    `json:"cards,omitempty" yaml:"cards"`
	Code     []CodeSample   `json:"code,omitempty" yaml:"code"`
	Links    []LinkEntry    `json:"links,omitempty" yaml:"links"`
}

// Len returns the number of entries in the section's populated list.
func (s Section) Len() int {
	switch s.Kind {
	case KindCommands:
		return len(s.Commands)
	case KindSettings:
		return len(s.Settings)
	case KindSteps:
		return len(s.Steps)
	case KindEnvVars:
		return len(s.EnvVars)
	case KindCards:
		return len(s.Cards)
	case KindCode:
		return len(s.Code)
	case KindLinks:
		return len(s.Links)
	default:
		return 0
	}
}

// CommandEntry documents one CLI or build command.
type CommandEntry struct {
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description" yaml:"description"`
	Usage       string `json:"usage,omitempty" yaml:"usage"`
}

// SettingEntry documents one configuration key.
type SettingEntry struct {
	Key         string   `json:"key" yaml:"key"`
	Type        string   `json:"type" yaml:"type"`
	Default     *string  `json:"default,omitempty" yaml:"default"`
	Options     []string `json:"options,omitempty" yaml:"options"`
	Required    bool     `json:"required" yaml:"required"`
	Description string   `json:"description" yaml:"description"`
	Example     string   `json:"example" yaml:"example"`
}

// StepEntry is one step of an ordered procedure.
type StepEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Command     string `json:"command,omitempty" yaml:"command"`
}

// EnvVarEntry documents one environment variable.
type EnvVarEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default,omitempty" yaml:"default"`
	Example     string `json:"example" yaml:"example"`
}

// CardEntry is a titled paragraph.
type CardEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CodeSample is a titled code block.
type CodeSample struct {
	Title    string `json:"title" yaml:"title"`
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code" yaml:"code"`
}

// LinkEntry points at another page or an external destination.
type LinkEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Href        string `json:"href" yaml:"href"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(r.Sections))
	for i, section := range r.Sections {
		out.Sections[i] = section.clone()
	}
	return out
}

func (s Section) clone() Section {
	out := s
	out.Commands = cloneSlice(s.Commands)
	out.Steps = cloneSlice(s.Steps)
	out.EnvVars = cloneSlice(s.EnvVars)
	out.Cards = cloneSlice(s.Cards)
	out.Code = cloneSlice(s.Code)
	out.Links = cloneSlice(s.Links)
	if s.Settings != nil {
		out.Settings = make([]SettingEntry, len(s.Settings))
		for i, setting := range s.Settings {
			copied := setting
			if setting.Default != nil {
				value := *setting.Default
				copied.Default = &value
			}
			copied.Options = cloneSlice(setting.Options)
			out.Settings[i] = copied
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Section returns the section with id.
func (r Record) Section(id string) (Section, bool) {
	for _, section := range r.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}
