package content

import (
	"fmt"
	"strings"
)

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validateRecord(record Record) error {
	if blank(record.Title) {
		return fmt.Errorf("title is required")
	}
	if blank(record.Subtitle) {
		return fmt.Errorf("subtitle is required")
	}
	if len(record.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	seen := make(map[string]bool, len(record.Sections))
	for i, section := range record.Sections {
		if blank(section.ID) {
			return fmt.Errorf("section %d: id is required", i)
		}
		if seen[section.ID] {
			return fmt.Errorf("section %q: duplicate id", section.ID)
		}
		seen[section.ID] = true
		if err := validateSection(section); err != nil {
			return fmt.Errorf("section %q: %w", section.ID, err)
		}
	}
	return validateLabels(record.Labels)
}

func validateSection(section Section) error {
	if blank(section.Title) {
		return fmt.Errorf("title is required")
	}
	populated := map[SectionKind]int{
		KindCommands: len(section.Commands),
		KindSettings: len(section.Settings),
		KindSteps:    len(section.Steps),
		KindEnvVars:  len(section.EnvVars),
		KindCards:    len(section.Cards),
		KindCode:     len(section.Code),
		KindLinks:    len(section.Links),
	}
	if _, ok := populated[section.Kind]; !ok {
		return fmt.Errorf("unknown kind %q", section.Kind)
	}
	for _, kind := range Kinds() {
		if kind == section.Kind {
			if populated[kind] == 0 {
				return fmt.Errorf("%s section has no entries", kind)
			}
			continue
		}
		if populated[kind] > 0 {
			return fmt.Errorf("%s section must not carry %s entries", section.Kind, kind)
		}
	}

	for i, entry := range section.Commands {
		if blank(entry.Command) || blank(entry.Description) {
			return fmt.Errorf("command %d: command and description are required", i)
		}
	}
	for i, entry := range section.Settings {
		if blank(entry.Key) || blank(entry.Type) || blank(entry.Description) || blank(entry.Example) {
			return fmt.Errorf("setting %d: key, type, description and example are required", i)
		}
		if entry.Default != nil && blank(*entry.Default) {
			return fmt.Errorf("setting %q: omit default instead of leaving it blank", entry.Key)
		}
		for _, option := range entry.Options {
			if blank(option) {
				return fmt.Errorf("setting %q: blank option", entry.Key)
			}
		}
	}
	for i, entry := range section.Steps {
		if blank(entry.Title) || blank(entry.Description) {
			return fmt.Errorf("step %d: title and description are required", i)
		}
	}
	for i, entry := range section.EnvVars {
		if blank(entry.Name) || blank(entry.Description) || blank(entry.Example) {
			return fmt.Errorf("env var %d: name, description and example are required", i)
		}
	}
	for i, entry := range section.Cards {
		if blank(entry.Title) || blank(entry.Description) {
			return fmt.Errorf("card %d: title and description are required", i)
		}
	}
	for i, entry := range section.Code {
		if blank(entry.Title) || blank(entry.Language) || blank(entry.Code) {
			return fmt.Errorf("code sample %d: title, language and code are required", i)
		}
	}
	for i, entry := range section.Links {
		if blank(entry.Title) || blank(entry.Description) || blank(entry.Href) {
			return fmt.Errorf("link %d: title, description and href are required", i)
		}
	}
	return nil
}

func validateLabels(labels Labels) error {
	fields := map[string]string{
		"command":     labels.Command,
		"description": labels.Description,
		"usage":       labels.Usage,
		"key":         labels.Key,
		"type":        labels.Type,
		"default":     labels.Default,
		"options":     labels.Options,
		"required":    labels.Required,
		"example":     labels.Example,
		"name":        labels.Name,
		"yes":         labels.Yes,
		"no":          labels.No,
	}
	for name, value := range fields {
		if blank(value) {
			return fmt.Errorf("label %q is missing", name)
		}
	}
	return nil
}

// validateParity requires a translation to keep the base record's shape,
// including which optional fields are authored.
func validateParity(base Record, translated Record) error {
	if len(base.Sections) != len(translated.Sections) {
		return fmt.Errorf("has %d sections, base has %d", len(translated.Sections), len(base.Sections))
	}
	for i, want := range base.Sections {
		got := translated.Sections[i]
		if got.ID != want.ID || got.Kind != want.Kind {
			return fmt.Errorf("section %d is %s/%s, base has %s/%s", i, got.ID, got.Kind, want.ID, want.Kind)
		}
		if got.Len() != want.Len() {
			return fmt.Errorf("section %q has %d entries, base has %d", got.ID, got.Len(), want.Len())
		}
		if blank(got.Description) != blank(want.Description) {
			return fmt.Errorf("section %q description presence differs from base", got.ID)
		}
		for j, entry := range want.Commands {
			if blank(got.Commands[j].Usage) != blank(entry.Usage) {
				return fmt.Errorf("section %q command %d usage presence differs from base", got.ID, j)
			}
		}
		for j, entry := range want.Settings {
			setting := got.Settings[j]
			if setting.Key != entry.Key {
				return fmt.Errorf("section %q setting %d is %q, base has %q", got.ID, j, setting.Key, entry.Key)
			}
			if (setting.Default == nil) != (entry.Default == nil) {
				return fmt.Errorf("section %q setting %q default presence differs from base", got.ID, entry.Key)
			}
			if len(setting.Options) != len(entry.Options) {
				return fmt.Errorf("section %q setting %q has %d options, base has %d", got.ID, entry.Key, len(setting.Options), len(entry.Options))
			}
		}
		for j, entry := range want.Steps {
			if blank(got.Steps[j].Command) != blank(entry.Command) {
				return fmt.Errorf("section %q step %d command presence differs from base", got.ID, j)
			}
		}
		for j, entry := range want.EnvVars {
			env := got.EnvVars[j]
			if env.Name != entry.Name {
				return fmt.Errorf("section %q env var %d is %q, base has %q", got.ID, j, env.Name, entry.Name)
			}
			if blank(env.Default) != blank(entry.Default) {
				return fmt.Errorf("section %q env var %q default presence differs from base", got.ID, entry.Name)
			}
		}
	}
	if (base.Intro == "") != (translated.Intro == "") {
		return fmt.Errorf("intro presence differs from base")
	}
	return nil
}
