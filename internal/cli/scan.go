package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prezicap/internal/config"
	"prezicap/internal/youtube"
)

var (
	scanOutput string
	scanSave   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Scan saved HTML files for YouTube links",
	Long: `Scan saved HTML files for YouTube links without launching a browser.

Embedded frame sources (iframe, embed) are checked first, then the raw
markup is scanned for every known YouTube URL shape. Duplicates are
collapsed to one canonical link.

Examples:
  prezicap scan page.html
  prezicap scan --save -o links_out saved/*.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "directory for the link report")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "write the link report")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	session := youtube.NewExtractor()

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		fmt.Printf("Scanning %s\n", path)

		// Frame sources first so embeds keep their iframe origin tag.
		if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data)); err == nil {
			doc.Find("iframe[src], embed[src]").Each(func(_ int, sel *goquery.Selection) {
				if src, ok := sel.Attr("src"); ok {
					session.Extract(src)
				}
			})
		}
		session.ExtractAll(string(data))
	}

	fmt.Println()
	if session.Count() == 0 {
		fmt.Println("No YouTube links found.")
		return nil
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	bold.Printf("YouTube links (%d):\n", session.Count())
	for i, u := range session.URLs() {
		cyan.Printf("  %d. %s\n", i+1, u)
	}

	if scanSave {
		dir := scanOutput
		if dir == "" {
			dir = config.LoadOrDefault().OutputPath()
		}
		path, err := session.SaveReport(dir, "")
		if err != nil {
			return err
		}
		fmt.Println()
		color.New(color.FgGreen).Printf("Report saved: ")
		fmt.Println(path)
	}
	return nil
}
