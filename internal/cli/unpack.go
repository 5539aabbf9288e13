package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"qparchive/internal/archive"
	"qparchive/internal/model"
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <archive> [dest]",
	Short: "Recursively extract a ZIP and any ZIPs nested inside it",
	Long: `Unpack extracts a ZIP archive, then walks the extracted tree and
extracts any nested ZIPs it finds, preserving the original folder tree.
Each nested ZIP is extracted into a sibling directory named after it and
deleted afterwards, so re-running on the same tree is a no-op.

If dest is omitted, extraction happens next to the archive in a directory
named after it.

Example:
  qparchive unpack papers.zip
  qparchive unpack papers.zip ./extracted`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUnpack,
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}

func runUnpack(cmd *cobra.Command, args []string) error {
	archivePath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve archive path: %w", err)
	}

	if _, err := os.Stat(archivePath); err != nil {
		return fmt.Errorf("file not found: %s", archivePath)
	}
	if !archive.IsArchive(archivePath) {
		return fmt.Errorf("not a valid ZIP file: %s", archivePath)
	}

	var dest string
	if len(args) == 2 {
		dest, err = filepath.Abs(args[1])
		if err != nil {
			return fmt.Errorf("resolve destination path: %w", err)
		}
	} else {
		dest = archive.DefaultDest(archivePath)
	}

	cfg := model.DefaultConfig()
	if err := archive.ExtractRecursive(archivePath, dest, cfg.Unpack.ArchiveExt); err != nil {
		return fmt.Errorf("unpack failed: %w", err)
	}

	fmt.Printf("Done. All contents extracted to: %s\n", dest)
	return nil
}
