package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// DefaultPath is where the updater looks for its source URLs unless
// SHEET_CONFIG or --config says otherwise.
const DefaultPath = "sheet_config.json"

// Sources maps each content section to the published CSV export URL it is
// read from. Keys missing from the file are left empty and their sections
// render from defaults.
type Sources struct {
	GeneralCSVURL        string `json:"general_csv_url"`
	HeroCSVURL           string `json:"hero_csv_url"`
	AboutCSVURL          string `json:"about_csv_url"`
	ValuesCSVURL         string `json:"values_csv_url"`
	ServicesCSVURL       string `json:"services_csv_url"`
	ServiceDetailsCSVURL string `json:"service_details_csv_url"`
	ContactCSVURL        string `json:"contact_csv_url"`
}

// Load reads the section→URL mapping from path. A missing or unparsable
// file is the one fatal condition of the whole pipeline; the caller is
// expected to abort on error.
func Load(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var sources Sources
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("Loaded sheet config")
	return &sources, nil
}

// WriteStarter writes a skeleton config with every section key present and
// empty. It refuses to clobber an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	data, err := json.MarshalIndent(&Sources{}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
