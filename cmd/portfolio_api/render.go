package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makhembu/portfolio-api/internal/pdf"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

var (
	renderTrack  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume PDF to a file",
	Long:  `Render the resume for a career track to a PDF file without starting the server.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTrack, "track", "both", "Career track: it, translation, or both")
	renderCmd.Flags().StringVar(&renderOutput, "output", "", "Output path (defaults to the standard resume filename)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	track := portfolio.Track(renderTrack)
	if !track.Valid() {
		return fmt.Errorf("unknown track %q: must be one of it, translation, both", renderTrack)
	}

	data := portfolio.Default()
	out, err := pdf.RenderResume(data.BuildResume(track))
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	path := renderOutput
	if path == "" {
		path = data.ResumeFilename()
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", path, len(out))
	return nil
}
