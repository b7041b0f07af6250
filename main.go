package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"diya-scene.klederson.com/internal/app"
	"diya-scene.klederson.com/internal/config"
	"diya-scene.klederson.com/internal/export"
	"diya-scene.klederson.com/internal/scene"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagFPS       int
	flagNoCaption bool
	flagLogFile   string
	flagOut       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diya-scene",
		Short: "Royal Ghee Lamp Ceremony - an animated palace scene for the terminal",
		Long: `diya-scene renders a royal couple lighting ghee lamps in a palace hall:
flickering diyas, drifting embers, marigold garlands and a carved stone arch,
animated continuously in the terminal.

Keys: space/p pause, c caption, ? help, q quit.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML settings file")
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.DefaultFPS, "Target frames per second (1-60)")
	rootCmd.Flags().BoolVar(&flagNoCaption, "no-caption", false, "Start with the caption panel hidden")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the composed scene tree as YAML",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}

	if settings.LogFile != "" {
		f, err := tea.LogToFile(settings.LogFile, "diya-scene")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// The alt screen owns stdout; stray log lines would corrupt it.
		log.SetOutput(io.Discard)
	}
	log.Printf("settings: fps=%d caption=%t", settings.FPS, settings.Caption)

	model := app.New(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(settings.FPS),
	)

	_, err = p.Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	desc := scene.Compose()
	if flagOut == "" {
		return export.WriteYAML(cmd.OutOrStdout(), desc)
	}
	if err := export.WriteYAMLFile(flagOut, desc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", flagOut)
	return nil
}
