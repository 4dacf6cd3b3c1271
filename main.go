package main

import (
	"context"
	"fmt"
	"os"

	"website_updater/internal/app"
	"website_updater/internal/config"
	"website_updater/internal/content"
	"website_updater/internal/gdrive"
	"website_updater/internal/render"
	"website_updater/internal/sheets"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type updateOptions struct {
	configPath string
	outputFile string
	imagesDir  string
}

func main() {
	app.SetupEnvironment()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &updateOptions{}

	rootCmd := &cobra.Command{
		Use:   "website-updater",
		Short: "Regenerate the website from published Google Sheets CSV exports",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runUpdate(cmd.Context(), opts); err != nil {
				log.Fatal().Err(err).Msg("Website update failed")
			}
		},
	}
	rootCmd.Flags().StringVar(&opts.configPath, "config", app.GetEnvWithDefault("SHEET_CONFIG", config.DefaultPath), "path to the sheet config file")
	rootCmd.Flags().StringVar(&opts.outputFile, "output", app.GetEnvWithDefault("OUTPUT_FILE", "index.html"), "path of the generated HTML file")
	rootCmd.Flags().StringVar(&opts.imagesDir, "images-dir", app.GetEnvWithDefault("IMAGES_DIR", "images"), "folder mirrored images are written to")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter sheet config with empty section URLs",
		Run: func(cmd *cobra.Command, args []string) {
			path := app.GetEnvWithDefault("SHEET_CONFIG", config.DefaultPath)
			if err := config.WriteStarter(path); err != nil {
				log.Fatal().Err(err).Msg("Failed to write starter config")
			}
			log.Info().Str("path", path).Msg("Wrote starter config, fill in the CSV export URLs")
		},
	}
	rootCmd.AddCommand(initCmd)

	return rootCmd
}

// runUpdate is the whole pipeline: config → fetch → parse → mirror images →
// render → write. Only a missing config or an unwritable output file fail
// the run; every section and image degrades to its defaults instead.
func runUpdate(ctx context.Context, opts *updateOptions) error {
	log.Info().Msg("Starting website update from Google Sheets")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Error().Msgf("Please create %s with your published CSV export URLs", opts.configPath)
		return err
	}
	log.Info().Msg("Loaded configuration")

	client := sheets.NewClient()

	log.Info().Msg("Reading data from Google Sheets")
	generalRows := fetchSection(ctx, client, "general", cfg.GeneralCSVURL)
	heroRows := fetchSection(ctx, client, "hero", cfg.HeroCSVURL)
	aboutRows := fetchSection(ctx, client, "about", cfg.AboutCSVURL)
	valuesRows := fetchSection(ctx, client, "values", cfg.ValuesCSVURL)
	servicesRows := fetchSection(ctx, client, "services", cfg.ServicesCSVURL)
	detailRows := fetchSection(ctx, client, "service_details", cfg.ServiceDetailsCSVURL)
	contactRows := fetchSection(ctx, client, "contact", cfg.ContactCSVURL)

	log.Info().Msg("Parsing data")
	general := content.ParseGeneral(generalRows)
	hero := content.ParseHero(heroRows)
	about := content.ParseAbout(aboutRows)
	values := content.ParseCoreValues(valuesRows)
	services := content.ParseServices(servicesRows)
	details := content.ParseServiceDetails(detailRows)
	contact := content.ParseContact(contactRows)

	log.Info().Int("fields", len(general)).Msg("Parsed general info")
	log.Info().Int("fields", len(hero)).Msg("Parsed hero section")
	log.Info().Int("paragraphs", len(about.Paragraphs)).Int("stats", len(about.Stats)).Msg("Parsed about section")
	log.Info().Int("values", len(values)).Msg("Parsed core values")
	log.Info().Int("services", len(services)).Msg("Parsed services")
	log.Info().Int("pages", len(details)).Msg("Parsed service details")
	log.Info().Int("fields", len(contact)).Msg("Parsed contact info")

	mirror := gdrive.NewMirror(opts.imagesDir)
	mirrored := processImages(ctx, mirror, general, details)

	log.Info().Msg("Generating HTML")
	html := render.Page(general, hero, about, values, services, details, contact)

	log.Info().Str("file", opts.outputFile).Msg("Writing output")
	if err := os.WriteFile(opts.outputFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.outputFile, err)
	}

	log.Info().Msg("Website updated successfully")

	notifier := app.InitializeNotificationClient()
	notifier.NotifySiteUpdated(ctx, opts.outputFile, 7, mirrored)

	return nil
}

// fetchSection wraps FetchRows with the best-effort policy: a failed fetch
// is logged and the section proceeds with no rows.
func fetchSection(ctx context.Context, client *sheets.Client, name, url string) []sheets.Row {
	rows, err := client.FetchRows(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("section", name).Msg("Failed to read section CSV")
		return nil
	}
	return rows
}

// processImages mirrors Drive-hosted images into the local images folder
// and rewrites the records to reference the local copies. Returns how many
// images were mirrored.
func processImages(ctx context.Context, mirror *gdrive.Mirror, general content.Fields, details []content.ServiceDetail) int {
	log.Info().Msg("Processing images")
	mirrored := 0

	if logo := general["logo_url"]; gdrive.IsDriveURL(logo) {
		log.Debug().Msg("Processing logo")
		general["logo_url"] = mirror.Resolve(ctx, logo, "logo.png")
		if general["logo_url"] != "" {
			mirrored++
		}
	}

	for i := range details {
		if !gdrive.IsDriveURL(details[i].BGImage) {
			continue
		}
		name := details[i].ServiceID
		if name == "" {
			name = fmt.Sprintf("service-%d", i)
		}
		log.Debug().Str("service", details[i].ServiceID).Msg("Processing background image")
		details[i].BGImage = mirror.Resolve(ctx, details[i].BGImage, name+"-bg.jpg")
		if details[i].BGImage != "" {
			mirrored++
		}
	}

	log.Info().Int("mirrored", mirrored).Msg("Image processing complete")
	return mirrored
}
