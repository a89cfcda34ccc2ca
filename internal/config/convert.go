package config

import (
	"strings"

	"github.com/danmuck/fieldbuf/internal/fieldset"
	"github.com/danmuck/fieldbuf/internal/lint"
)

func LintItems(entries []FieldEntry) []lint.Item {
	items := make([]lint.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, lint.Item{
			Spec: fieldset.Spec{
				Name:     strings.TrimSpace(entry.Name),
				Capacity: entry.Capacity,
			},
			Value: entry.Value,
		})
	}
	return items
}
