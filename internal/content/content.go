// Package content folds fetched spreadsheet rows into the typed section
// records the renderer consumes. Every parser is total: malformed or
// missing fields fall back to a documented default, never an error.
package content

import (
	"strings"

	"website_updater/internal/sheets"
)

// DefaultGradient is the Tailwind gradient token used when a row leaves the
// gradient cell blank.
const DefaultGradient = "from-blue-500 to-cyan-500"

// DefaultIcon is used when a core-value row leaves the icon cell blank.
const DefaultIcon = "🎯"

// DefaultBulletsTitle heads a service detail's bullet list when the sheet
// does not provide one.
const DefaultBulletsTitle = "Key Services Include:"

// Fields is a flat section record built from field/value rows. General,
// hero, and contact sections all use this shape.
type Fields map[string]string

// Get returns the value for key, or fallback when the field is absent or
// blank.
func (f Fields) Get(key, fallback string) string {
	if v := f[key]; v != "" {
		return v
	}
	return fallback
}

// Stat is one statistic in the about section, assembled from a pair of
// <key>_number / <key>_label rows. Either half may be missing.
type Stat struct {
	Key    string
	Number string
	Label  string
}

type About struct {
	Title      string
	Paragraphs []string
	Stats      []Stat
}

type CoreValue struct {
	Icon        string
	Title       string
	Description string
	Gradient    string
}

type Service struct {
	Name     string
	LinkID   string
	Gradient string
}

type ServiceDetail struct {
	ServiceID     string
	Title         string
	Intro         string
	BulletsTitle  string
	Bullets       []string
	Closing       string
	BGImage       string
	ImagePosition string // "left" or "right"
}

// parseFields folds field/value rows into a flat map. Rows with a blank
// field or value are skipped; a repeated field overwrites the earlier value.
func parseFields(rows []sheets.Row) Fields {
	fields := make(Fields)
	for _, row := range rows {
		if row["field"] != "" && row["value"] != "" {
			fields[row["field"]] = row["value"]
		}
	}
	return fields
}

// ParseGeneral parses site-wide fields (title, company name, logo, footer).
func ParseGeneral(rows []sheets.Row) Fields {
	return parseFields(rows)
}

// ParseHero parses the hero section fields.
func ParseHero(rows []sheets.Row) Fields {
	return parseFields(rows)
}

// ParseContact parses the contact form labels and placeholders.
func ParseContact(rows []sheets.Row) Fields {
	return parseFields(rows)
}

// ParseAbout dispatches on the field name: "title" sets the heading, any
// "paragraph*" field appends a paragraph in row order, and "*_number" /
// "*_label" fields merge into one stat per stripped key, first-seen order.
func ParseAbout(rows []sheets.Row) About {
	var about About
	for _, row := range rows {
		field := row["field"]
		value := row["value"]
		switch {
		case field == "title":
			about.Title = value
		case strings.HasPrefix(field, "paragraph"):
			about.Paragraphs = append(about.Paragraphs, value)
		case strings.HasSuffix(field, "_number"):
			about.stat(strings.TrimSuffix(field, "_number")).Number = value
		case strings.HasSuffix(field, "_label"):
			about.stat(strings.TrimSuffix(field, "_label")).Label = value
		}
	}
	return about
}

// stat returns the stat record for key, creating it at the end of the list
// on first sight.
func (a *About) stat(key string) *Stat {
	for i := range a.Stats {
		if a.Stats[i].Key == key {
			return &a.Stats[i]
		}
	}
	a.Stats = append(a.Stats, Stat{Key: key})
	return &a.Stats[len(a.Stats)-1]
}

// ParseCoreValues keeps one value card per row that names both an icon and a
// title, in row order.
func ParseCoreValues(rows []sheets.Row) []CoreValue {
	var values []CoreValue
	for _, row := range rows {
		if row["icon"] == "" || row["title"] == "" {
			continue
		}
		values = append(values, CoreValue{
			Icon:        orDefault(row["icon"], DefaultIcon),
			Title:       row["title"],
			Description: row["description"],
			Gradient:    orDefault(row["gradient"], DefaultGradient),
		})
	}
	return values
}

// ParseServices keeps one overview card per row with a name, in row order.
func ParseServices(rows []sheets.Row) []Service {
	var services []Service
	for _, row := range rows {
		if row["name"] == "" {
			continue
		}
		services = append(services, Service{
			Name:     row["name"],
			LinkID:   row["link_id"],
			Gradient: orDefault(row["gradient"], DefaultGradient),
		})
	}
	return services
}

// ParseServiceDetails keeps one full-page section per row with a
// service_id. Bullets come from the key_services cell split on "|";
// image_position is "left" only when the cell says exactly that.
func ParseServiceDetails(rows []sheets.Row) []ServiceDetail {
	var details []ServiceDetail
	for _, row := range rows {
		if row["service_id"] == "" {
			continue
		}

		position := "right"
		if row["image_position"] == "left" {
			position = "left"
		}

		details = append(details, ServiceDetail{
			ServiceID:     row["service_id"],
			Title:         row["title"],
			Intro:         row["intro"],
			BulletsTitle:  orDefault(row["bullets_title"], DefaultBulletsTitle),
			Bullets:       splitBullets(row["key_services"]),
			Closing:       row["closing"],
			BGImage:       row["bg_image"],
			ImagePosition: position,
		})
	}
	return details
}

// splitBullets splits a pipe-delimited cell, trimming whitespace and
// dropping empty segments.
func splitBullets(cell string) []string {
	if cell == "" {
		return nil
	}
	var bullets []string
	for _, segment := range strings.Split(cell, "|") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			bullets = append(bullets, trimmed)
		}
	}
	return bullets
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
