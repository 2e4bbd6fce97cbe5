package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/api"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/mockups"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/progress"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/render"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate project documents from a free-text description",
	Long: `Sends the description to the generation backend and writes the resulting
SRS, diagrams, and screen mockups to the output directory as Markdown and
HTML.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output", "", "override output directory")
	generateCmd.Flags().StringSlice("screens", nil, "mockup screens to request (overrides config)")
	generateCmd.Flags().Bool("no-html", false, "write Markdown only, skip the HTML site")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return fmt.Errorf("description must not be empty")
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	screens, _ := cmd.Flags().GetStringSlice("screens")
	if len(screens) == 0 {
		screens = cfg.Screens
	}
	noHTML, _ := cmd.Flags().GetBool("no-html")

	client := api.New(cfg.BackendURL())
	if _, err := client.Health(ctx); err != nil {
		return fmt.Errorf("backend %s is not reachable: %w", cfg.BackendURL(), err)
	}

	// One progress step per section plus one for the mockups batch.
	total := 7 + 1
	reporter := progress.NewReporter()
	reporter.Start(total)

	// Updates arrive from the section loop and the mockups goroutine.
	var mu sync.Mutex
	seen := map[string]bool{}
	orch := generator.New(client, screens, func(snap generator.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		done, msg := progressOf(snap)
		reporter.Update(done, msg)
		if verbose {
			for _, sec := range snap.Sections {
				if sec.Status != generator.StatusLoading && !seen[sec.Name] {
					seen[sec.Name] = true
					fmt.Fprintf(os.Stderr, "%s: %s\n", sec.Name, sec.Status)
				}
			}
		}
	})
	final := orch.Generate(ctx, description)
	reporter.Finish()

	title := cfg.AppName
	if title == "" {
		title = "Project Documentation"
	}
	if err := writeArtifacts(final, outputDir, title, cfg.Theme, noHTML); err != nil {
		return err
	}

	failed := 0
	for _, sec := range final.Sections {
		if sec.Status == generator.StatusError {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: %s failed: %s\n", sec.Name, sec.Content)
		}
	}
	fmt.Printf("Generated %d sections and %d mockups in %s -> %s\n",
		len(final.Sections)-failed, len(final.Mockups), time.Since(start).Round(time.Second), outputDir)
	return nil
}

// progressOf counts resolved entries, treating the whole mockup batch as one
// step.
func progressOf(snap generator.Snapshot) (int, string) {
	done := 0
	msg := "Generating documents"
	for _, sec := range snap.Sections {
		if sec.Status != generator.StatusLoading {
			done++
		} else {
			msg = "Generating " + sec.Name
		}
	}
	mockupsPending := false
	for _, mk := range snap.Mockups {
		if mk.Status == generator.StatusLoading {
			mockupsPending = true
		}
	}
	if len(snap.Mockups) > 0 && !mockupsPending {
		done++
	}
	return done, msg
}

// writeArtifacts writes each section as Markdown, plus a themed HTML page per
// section, a combined document with a table of contents, and the mockup
// browser unless noHTML is set.
func writeArtifacts(snap generator.Snapshot, outputDir, title, themeName string, noHTML bool) error {
	docsDir := filepath.Join(outputDir, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	theme := store.ThemeDark
	if themeName == "light" {
		theme = store.ThemeLight
	}
	renderer := render.New()

	var exported []render.ExportSection
	for _, sec := range snap.Sections {
		if sec.Status != generator.StatusDone {
			continue
		}
		name := strings.ToLower(sec.Name)
		mdPath := filepath.Join(docsDir, name+".md")
		if err := os.WriteFile(mdPath, []byte(sec.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", mdPath, err)
		}
		if noHTML {
			continue
		}

		page, err := renderer.Render(sec.Content, theme)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", sec.Name, err)
		}
		doc, err := render.Document(sec.Name, page.HTML, theme)
		if err != nil {
			return err
		}
		htmlPath := filepath.Join(docsDir, name+".html")
		if err := os.WriteFile(htmlPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", htmlPath, err)
		}
		exported = append(exported, render.ExportSection{Title: sec.Name, Markdown: sec.Content})
	}

	if !noHTML && len(exported) > 0 {
		combined, err := renderer.Export(title, exported, theme)
		if err != nil {
			return fmt.Errorf("rendering combined document: %w", err)
		}
		combinedPath := filepath.Join(docsDir, "index.html")
		if err := os.WriteFile(combinedPath, []byte(combined), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", combinedPath, err)
		}
	}

	if noHTML || len(snap.Mockups) == 0 {
		return nil
	}
	set := mockupSet(snap.Mockups)
	if len(set.Mockups) == 0 {
		names := make([]string, 0, len(snap.Mockups))
		for _, mk := range snap.Mockups {
			names = append(names, mk.Name)
		}
		set = mockups.Fallback(names)
	}
	return set.WriteAll(filepath.Join(outputDir, "mockups"))
}

func mockupSet(screens []generator.ScreenMockup) *mockups.Set {
	set := &mockups.Set{}
	for _, mk := range screens {
		if mk.Status != generator.StatusDone {
			continue
		}
		set.Mockups = append(set.Mockups, mockups.Mockup{
			ScreenName:  mk.Name,
			Description: mk.Description,
			HTMLContent: mk.HTML,
		})
	}
	return set
}
