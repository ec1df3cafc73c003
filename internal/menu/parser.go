package menu

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports a fatal problem with the menu feed. Line is
// 1-based (the header is line 1); zero means the error is not tied to
// a specific line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("menu parse error at line %d: %s", e.Line, e.Msg)
	}
	return "menu parse error: " + e.Msg
}

var requiredColumns = []string{"id", "name_he", "name_en", "price"}

var lineBreak = regexp.MustCompile(`\r?\n`)

// splitRow splits one CSV row on commas with a simple quoted-field
// guard: a comma inside a double-quoted field is not a delimiter.
// Escape sequences are deliberately not handled; the feed never uses
// them and the upstream producer quotes whole cells only.
func splitRow(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// parseAddons decodes the addons JSON cell. An unparseable cell is a
// per-row warning, not a fatal error: the item keeps nil addons.
// Groups with a missing id/label or an unrecognized type are dropped
// individually so one malformed group never discards its siblings.
func parseAddons(raw string, line int) []AddonGroup {
	// Quoted cells escape inner quotes by doubling them.
	raw = strings.ReplaceAll(raw, `""`, `"`)

	var groups []AddonGroup
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		log.Printf("line %d: unparseable addons json, keeping item without addons: %v", line, err)
		return nil
	}

	kept := groups[:0]
	for _, g := range groups {
		if g.ID == "" || g.Label == "" {
			log.Printf("line %d: dropping addon group with missing id/label", line)
			continue
		}
		if g.Type != AddonTypeSingle && g.Type != AddonTypeMulti {
			log.Printf("line %d: dropping addon group %q with unknown type %q", line, g.ID, g.Type)
			continue
		}
		kept = append(kept, g)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// ParseMenu turns the raw CSV feed into menu items. Column lookup is
// by header name, so the feed may order columns freely. Structural
// problems (missing required columns, a row without an id, a bad
// price) abort the parse; per-row addon problems only drop the field.
func ParseMenu(sourceText string) ([]Item, error) {
	trimmed := strings.TrimSpace(sourceText)
	if trimmed == "" {
		return nil, &ParseError{Msg: "empty menu source"}
	}

	lines := lineBreak.Split(trimmed, -1)
	if len(lines) < 2 {
		return nil, &ParseError{Msg: "menu needs a header row and at least one data row"}
	}

	cols := make(map[string]int)
	for i, c := range strings.Split(lines[0], ",") {
		cols[strings.TrimSpace(c)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("missing required column %q", required)}
		}
	}

	items := make([]Item, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2

		parts := splitRow(line)
		get := func(col string) string {
			idx, ok := cols[col]
			if !ok || idx >= len(parts) {
				return ""
			}
			return stripQuotes(parts[idx])
		}

		id := get("id")
		if id == "" {
			return nil, &ParseError{Line: lineNo, Msg: "row is missing an id"}
		}

		price := 0.0
		if raw := get("price"); raw != "" {
			p, err := strconv.ParseFloat(raw, 64)
			if err != nil || p < 0 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("price %q is not a non-negative number", raw)}
			}
			price = p
		}

		var tags []string
		for _, tag := range strings.Split(get("tags"), ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}

		var addons []AddonGroup
		if raw := get("addons"); raw != "" {
			addons = parseAddons(raw, lineNo)
		}

		items = append(items, Item{
			ID:            id,
			Category:      get("category"),
			NameHe:        get("name_he"),
			NameEn:        get("name_en"),
			DescriptionHe: get("description_he"),
			DescriptionEn: get("description_en"),
			Price:         price,
			ImageURL:      get("image_url"),
			Tags:          tags,
			Addons:        addons,
			Available:     get("available") != "0",
		})
	}

	return items, nil
}
