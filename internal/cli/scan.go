package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qparchive/internal/model"
	"qparchive/internal/scanner"
)

var (
	scanRoot string
	outDir   string
	siteRoot string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan paper folders and emit JSON metadata",
	Long: `Scan walks a question-paper tree and produces lightweight JSON
metadata for the static frontend:

  <out>/index.json             – subjects list (id, name, fullName, years, meta)
  <out>/subject_<id>.json      – per-subject paper entries

The tree follows the layout <root>/<group>/<SUBJECT>/<SUBJECT>/<files…>,
e.g. "QPs GATE 2007 to 2025"/CS/CS/CS2024.pdf. The year is embedded in
the filename, not a folder:

  CS2024.pdf    → year 2024, no part
  CS1-2017.pdf  → year 2017, part 1
  EE2-2021.pdf  → year 2021, part 2

Files whose names carry no parseable year are warned about and skipped.

Example:
  qparchive scan --root GATE_2007-2025_Question_Papers
  qparchive scan --root papers --out site/metadata --site-root site`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	defaults := model.DefaultConfig()
	scanCmd.Flags().StringVar(&scanRoot, "root", "", "root folder containing the group dirs (required)")
	scanCmd.Flags().StringVar(&outDir, "out", defaults.Scan.OutDir, "output metadata directory")
	scanCmd.Flags().StringVar(&siteRoot, "site-root", defaults.Scan.SiteRoot, "static-site root; rel_paths are relative to this")
	_ = scanCmd.MarkFlagRequired("root")
}

func runScan(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(scanRoot); err != nil {
		return fmt.Errorf("root folder not found: %s", scanRoot)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Scan.OutDir = outDir
	cfg.Scan.SiteRoot = siteRoot
	cfg.Output.Verbose = verbose

	s := scanner.New(scanRoot, cfg)

	result, err := s.Run()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	fmt.Printf("Wrote %d subjects, %d papers → %s\n", result.Subjects, result.Papers, result.OutDir)
	return nil
}
