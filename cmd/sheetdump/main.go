// Package main provides the CLI entry point for sheetdump.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdump/pkg/sheetdump"
)

var (
	workbookPath string
	sheetName    string
	limit        int
	schema       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdump",
		Short: "Print the rows of a worksheet",
		Long: `sheetdump prints the first rows of the MODELE_STAGING worksheet of
Modeles_Mappings.xlsx, found next to the program, as " | " separated text.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&workbookPath, "file", "f", "", "Workbook path (default: "+sheetdump.DefaultWorkbookName+" next to the program)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", sheetdump.DefaultSheetName, "Worksheet name")
	rootCmd.Flags().IntVar(&limit, "limit", sheetdump.DefaultLimit, "Maximum number of rows to print")
	rootCmd.Flags().BoolVar(&schema, "schema", false, "Print CREATE TABLE scripts for the tables declared in the sheet")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	path := workbookPath
	if path == "" {
		resolved, err := defaultWorkbookPath()
		if err != nil {
			return fmt.Errorf("cannot locate workbook: %w", err)
		}
		path = resolved
	}

	opts := sheetdump.DefaultOptions(path)
	opts.SheetName = sheetName
	opts.Limit = limit

	if schema {
		if err := sheetdump.DumpSchema(cmd.OutOrStdout(), opts); err != nil {
			return fmt.Errorf("schema generation failed: %w", err)
		}
		return nil
	}

	if err := sheetdump.Dump(cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	return nil
}

// defaultWorkbookPath looks for the workbook next to the executable, then
// next to this source file so `go run` finds it too.
func defaultWorkbookPath() (string, error) {
	exeDir, err := sheetdump.ProgramDir()
	if err != nil {
		return "", err
	}

	var srcDir string
	if _, file, _, ok := runtime.Caller(0); ok {
		srcDir = filepath.Dir(file)
	}

	return sheetdump.ResolveWorkbookPath(sheetdump.DefaultWorkbookName, exeDir, srcDir), nil
}
