package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prezicap/internal/config"
	"prezicap/internal/prezi"
	"prezicap/internal/version"
)

var (
	output     string
	visible    bool
	maxSlides  int
	delay      float64
	timeout    int
	windowSize string
	noReport   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "prezicap [url]",
	Short:         "Capture Prezi slides and harvest embedded YouTube links",
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		if err := runScrape(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	rootCmd.Flags().BoolVar(&visible, "visible", false, "show browser window (for debugging)")
	rootCmd.Flags().IntVar(&maxSlides, "max-slides", 0, "maximum number of slides to capture")
	rootCmd.Flags().Float64Var(&delay, "delay", 0, "delay before each screenshot in seconds")
	rootCmd.Flags().IntVar(&timeout, "timeout", 0, "page load timeout in seconds")
	rootCmd.Flags().StringVar(&windowSize, "window-size", "", "browser window size, e.g. 1920x1080")
	rootCmd.Flags().BoolVar(&noReport, "no-report", false, "skip writing the YouTube link report")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "plain-text progress output")
}

func Execute() error {
	return rootCmd.Execute()
}

func runScrape(cmd *cobra.Command, url string) error {
	cfg := config.LoadOrDefault()

	// Check for config file and warn if missing
	if !config.Exists() {
		fmt.Fprintln(os.Stderr, color.YellowString("Config file not found, using defaults. Run 'prezicap init'."))
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scraper := prezi.New(cfg, verbose)

	var res *prezi.Result
	var err error
	if verbose {
		res, err = scraper.Scrape(context.Background(), url)
	} else {
		res, err = runScrapeWithSpinner(scraper, url)
	}
	if err != nil {
		return err
	}

	printSummary(cfg, res)
	return nil
}

// applyFlags overlays explicitly set command-line flags onto the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if output != "" {
		cfg.OutputDir = output
	}
	if visible {
		cfg.Headless = false
	}
	if cmd.Flags().Changed("max-slides") {
		cfg.MaxSlides = maxSlides
	}
	if cmd.Flags().Changed("delay") {
		cfg.ScreenshotDelay = delay
	}
	if cmd.Flags().Changed("timeout") {
		cfg.PageLoadTimeout = timeout
	}
	if noReport {
		cfg.SaveLinks = false
	}
	if windowSize != "" {
		w, h, err := config.ParseWindowSize(windowSize)
		if err != nil {
			return err
		}
		cfg.WindowWidth = w
		cfg.WindowHeight = h
	}
	return nil
}

func printSummary(cfg *config.Config, res *prezi.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	bold.Printf("Presentation: ")
	fmt.Println(res.Title)
	fmt.Printf("  Slides captured: %d\n", len(res.Screenshots))
	fmt.Printf("  Output: %s\n", cfg.OutputPath())
	fmt.Println()

	if len(res.Links) == 0 {
		fmt.Println("No YouTube links found.")
		return
	}

	bold.Printf("YouTube links (%d):\n", len(res.Links))
	for i, l := range res.Links {
		cyan.Printf("  %d. %s\n", i+1, l.URL)
	}
	if res.ReportPath != "" {
		fmt.Println()
		green.Printf("Report saved: ")
		fmt.Println(res.ReportPath)
	}
}
