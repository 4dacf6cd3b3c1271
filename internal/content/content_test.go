package content_test

import (
	"testing"

	"website_updater/internal/content"
	"website_updater/internal/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneralLastWriteWins(t *testing.T) {
	rows := []sheets.Row{
		{"field": "site_title", "value": "First"},
		{"field": "company_name", "value": "Acme"},
		{"field": "site_title", "value": "Second"},
	}

	general := content.ParseGeneral(rows)
	assert.Equal(t, "Second", general["site_title"])
	assert.Equal(t, "Acme", general["company_name"])

	// Re-running the fold on the same input yields the same map.
	assert.Equal(t, general, content.ParseGeneral(rows))
}

func TestParseHeroSkipsIncompleteRows(t *testing.T) {
	rows := []sheets.Row{
		{"field": "title", "value": "Welcome"},
		{"field": "", "value": "orphan value"},
		{"field": "subtitle", "value": ""},
		{"field": "button_text", "value": "Go"},
	}

	hero := content.ParseHero(rows)
	assert.Len(t, hero, 2)
	assert.Equal(t, "Welcome", hero["title"])
	assert.Equal(t, "Go", hero["button_text"])
}

func TestFieldsGet(t *testing.T) {
	fields := content.Fields{"title": "Hello", "empty": ""}
	assert.Equal(t, "Hello", fields.Get("title", "fallback"))
	assert.Equal(t, "fallback", fields.Get("empty", "fallback"))
	assert.Equal(t, "fallback", fields.Get("missing", "fallback"))
}

func TestParseAbout(t *testing.T) {
	rows := []sheets.Row{
		{"field": "title", "value": "X"},
		{"field": "paragraph1", "value": "A"},
		{"field": "revenue_number", "value": "5"},
		{"field": "revenue_label", "value": "Clients"},
	}

	about := content.ParseAbout(rows)
	assert.Equal(t, "X", about.Title)
	assert.Equal(t, []string{"A"}, about.Paragraphs)
	require.Len(t, about.Stats, 1)
	assert.Equal(t, content.Stat{Key: "revenue", Number: "5", Label: "Clients"}, about.Stats[0])
}

func TestParseAboutStatsMergeAcrossRows(t *testing.T) {
	rows := []sheets.Row{
		{"field": "years_number", "value": "25"},
		{"field": "projects_number", "value": "300"},
		{"field": "years_label", "value": "Years"},
		{"field": "partial_label", "value": "Label only"},
	}

	about := content.ParseAbout(rows)
	require.Len(t, about.Stats, 3)

	// First-seen order is preserved.
	assert.Equal(t, content.Stat{Key: "years", Number: "25", Label: "Years"}, about.Stats[0])
	assert.Equal(t, content.Stat{Key: "projects", Number: "300"}, about.Stats[1])
	// A stat may stay partial when only one half ever appears.
	assert.Equal(t, content.Stat{Key: "partial", Label: "Label only"}, about.Stats[2])
}

func TestParseAboutParagraphOrder(t *testing.T) {
	rows := []sheets.Row{
		{"field": "paragraph1", "value": "first"},
		{"field": "paragraph2", "value": "second"},
		{"field": "paragraph_extra", "value": "third"},
	}

	about := content.ParseAbout(rows)
	assert.Equal(t, []string{"first", "second", "third"}, about.Paragraphs)
}

func TestParseCoreValues(t *testing.T) {
	rows := []sheets.Row{
		{"icon": "🔧", "title": "Craft", "description": "Details matter", "gradient": "from-red-500 to-orange-500"},
		{"icon": "", "title": "No icon"},
		{"icon": "⚡", "title": ""},
		{"icon": "⭐", "title": "Quality", "description": "", "gradient": ""},
	}

	values := content.ParseCoreValues(rows)
	require.Len(t, values, 2)
	assert.Equal(t, "🔧", values[0].Icon)
	assert.Equal(t, "from-red-500 to-orange-500", values[0].Gradient)
	assert.Equal(t, "Quality", values[1].Title)
	assert.Equal(t, content.DefaultGradient, values[1].Gradient)
}

func TestParseServices(t *testing.T) {
	rows := []sheets.Row{
		{"name": "Fabrication", "link_id": "fabrication", "gradient": ""},
		{"name": "", "link_id": "ignored"},
		{"name": "Installation", "link_id": "installation", "gradient": "from-green-500 to-teal-500"},
	}

	services := content.ParseServices(rows)
	require.Len(t, services, 2)
	assert.Equal(t, "Fabrication", services[0].Name)
	assert.Equal(t, content.DefaultGradient, services[0].Gradient)
	assert.Equal(t, "installation", services[1].LinkID)
}

func TestParseServiceDetailsBullets(t *testing.T) {
	rows := []sheets.Row{
		{"service_id": "fab", "key_services": "One | Two | Three"},
		{"service_id": "empty", "key_services": ""},
		{"service_id": "ragged", "key_services": " | Solo ||"},
	}

	details := content.ParseServiceDetails(rows)
	require.Len(t, details, 3)
	assert.Equal(t, []string{"One", "Two", "Three"}, details[0].Bullets)
	assert.Empty(t, details[1].Bullets)
	assert.Equal(t, []string{"Solo"}, details[2].Bullets)
}

func TestParseServiceDetailsDefaults(t *testing.T) {
	rows := []sheets.Row{
		{"service_id": "fab", "title": "Fabrication", "image_position": "left"},
		{"service_id": "inst", "image_position": "LEFT"},
		{"service_id": "weld"},
		{"field": "no_service_id", "value": "skipped"},
	}

	details := content.ParseServiceDetails(rows)
	require.Len(t, details, 3)
	assert.Equal(t, "left", details[0].ImagePosition)
	// Anything but an exact "left" falls back to right.
	assert.Equal(t, "right", details[1].ImagePosition)
	assert.Equal(t, "right", details[2].ImagePosition)
	assert.Equal(t, content.DefaultBulletsTitle, details[2].BulletsTitle)
}

func TestParsersTotalOverEmptyInput(t *testing.T) {
	assert.Empty(t, content.ParseGeneral(nil))
	assert.Empty(t, content.ParseContact(nil))
	assert.Empty(t, content.ParseCoreValues(nil))
	assert.Empty(t, content.ParseServices(nil))
	assert.Empty(t, content.ParseServiceDetails(nil))

	about := content.ParseAbout(nil)
	assert.Empty(t, about.Title)
	assert.Empty(t, about.Paragraphs)
	assert.Empty(t, about.Stats)
}
