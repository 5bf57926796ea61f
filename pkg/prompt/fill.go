package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-noticegen/pkg/notice"
)

// Fill walks every field referenced by the given form definitions, in form
// order, prompting once per field with the current value as the default.
// Fields shared between forms are asked a single time. Multi-line narrative
// fields use the text-area prompt.
func Fill(ctx context.Context, driver Driver, defs []notice.Definition, fields notice.FieldSet) (notice.FieldSet, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}

	out := fields.Clone()
	if out == nil {
		out = notice.FieldSet{}
	}

	seen := make(map[string]struct{})
	for _, def := range defs {
		for _, name := range def.Required {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			current := out[name]
			value, err := askField(ctx, driver, def, name, current)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
	}
	return out, nil
}

func askField(ctx context.Context, driver Driver, def notice.Definition, name, current string) (string, error) {
	message := fmt.Sprintf("%s:", fieldLabel(name))

	if isFreeText(def, name) {
		value, err := driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current,
			Help:    fmt.Sprintf("Multi-line text for Form %s.", def.FormNumber),
		})
		if err != nil {
			return "", fmt.Errorf("prompt: field %q: %w", name, err)
		}
		return value, nil
	}

	value, err := driver.Input(ctx, InputConfig{
		Message: message,
		Default: current,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: field %q: %w", name, err)
	}
	return value, nil
}

func isFreeText(def notice.Definition, name string) bool {
	for _, candidate := range def.FreeText {
		if candidate == name {
			return true
		}
	}
	return false
}

// fieldLabel turns a snake_case field name into a readable prompt label,
// keeping the s8/s21 prefixes so users can tell which form a field serves.
func fieldLabel(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		switch part {
		case "s8":
			parts[i] = "S8"
		case "s21":
			parts[i] = "S21"
		default:
			if part != "" {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, " ")
}
