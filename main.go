// loccheck — validator for directive-annotated XML localization files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minios-linux/loccheck/checks"
	"github.com/minios-linux/loccheck/config"
	"github.com/minios-linux/loccheck/i18n"
	"github.com/minios-linux/loccheck/langmeta"
	"github.com/minios-linux/loccheck/preview"
	"github.com/minios-linux/loccheck/report"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "loccheck",
		Short: "Validator for directive-annotated XML localization files",
		Long: `loccheck — validator for directive-annotated XML localization files.

Checks that inline formatting directives (~r~, ~h~, ...) and numbered
placeholder variables ({0}) are used consistently across all translated
variants of each string entry. The en-US translation of an entry defines
the required directive set, the terminal directive and the required
variables; every other translation is validated against it.

Commands:
  check       Validate localization XML files
  langs       List the supported language tags
  version     Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newCheckCmd(),
		newLangsCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loccheck version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// langs (list supported language tags)
// ---------------------------------------------------------------------------

func newLangsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List the supported language tags",
		Long: `List the language tags accepted by --show-lang.

The list only validates the selector; any language tag may appear in the
data being checked.`,
		Run: func(cmd *cobra.Command, args []string) {
			for _, tag := range langmeta.Supported() {
				fmt.Printf("%-10s %s\n", tag, langmeta.Registry[tag].Name)
			}
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// check
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var (
		showLang         string
		warningsAsErrors bool
		displayLimit     int
		previewEnabled   bool
		previewFile      string
		indexFile        string
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate localization XML files",
		Long: `Validate localization XML files.

Files are taken from the command line; without arguments, from --index,
then from the 'files' or 'index' settings of .loccheck.yaml, then from
index.json in the project root.

Examples:
  # Validate two files
  loccheck check strings/menu.xml strings/dialog.xml

  # Validate everything listed in index.json, reporting strings that
  # lack a German translation
  loccheck check --show-lang de-DE

  # Strict run for CI: spacing/punctuation warnings fail the build
  loccheck check --treat-warnings-as-errors

  # Generate an HTML preview of the styled strings
  loccheck check --preview --preview-file preview.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkArgs{
				files:            args,
				showLang:         showLang,
				warningsAsErrors: warningsAsErrors,
				displayLimit:     displayLimit,
				preview:          previewEnabled,
				previewFile:      previewFile,
				indexFile:        indexFile,
				flags:            cmd.Flags(),
			})
		},
	}

	cmd.Flags().StringVar(&showLang, "show-lang", "", "Report entries missing this language")
	cmd.Flags().BoolVar(&warningsAsErrors, "treat-warnings-as-errors", false, "Treat warnings as errors")
	cmd.Flags().IntVar(&displayLimit, "display-limit", 10, "Display limit for missing translations")
	cmd.Flags().BoolVar(&previewEnabled, "preview", false, "Generate an HTML formatting preview")
	cmd.Flags().StringVar(&previewFile, "preview-file", "preview.html", "Preview output file")
	cmd.Flags().StringVar(&indexFile, "index", "", "JSON file listing the XML files to check")

	_ = cmd.RegisterFlagCompletionFunc("show-lang", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return langmeta.Supported(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

type checkArgs struct {
	files            []string
	showLang         string
	warningsAsErrors bool
	displayLimit     int
	preview          bool
	previewFile      string
	indexFile        string
	flags            interface{ Changed(string) bool }
}

func runCheck(a checkArgs) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}

	// Config supplies defaults for flags the user did not set.
	if cfg != nil {
		if a.showLang == "" {
			a.showLang = cfg.ShowLang
		}
		if !a.flags.Changed("treat-warnings-as-errors") {
			a.warningsAsErrors = cfg.WarningsAsErrors
		}
		if !a.flags.Changed("display-limit") {
			a.displayLimit = cfg.DisplayLimit
		}
		if !a.flags.Changed("preview") {
			a.preview = cfg.Preview
		}
		if !a.flags.Changed("preview-file") {
			a.previewFile = cfg.PreviewFile
		}
	}

	if a.showLang != "" {
		if err := validateShowLang(&a.showLang, cfg); err != nil {
			return err
		}
	}

	files, err := resolveFiles(a, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files to check: pass files as arguments, use --index, or create %s", config.IndexFileName)
	}

	logInfo(i18n.N("Checking %d file", "Checking %d files", len(files)), len(files))

	rep := report.NewReporter(os.Stdout)
	rep.WarningsAsErrors = a.warningsAsErrors

	ctx := checks.NewContext(rep)
	ctx.ShowLang = a.showLang
	ctx.DisplayLimit = a.displayLimit
	if a.preview {
		ctx.Preview = preview.NewDocument()
	}

	for _, file := range files {
		ctx.CheckFile(file)
	}

	if summary := ctx.MissingSummary(); summary != "" {
		fmt.Println(summary)
	}

	if ctx.Preview != nil {
		if err := ctx.Preview.WriteFile(a.previewFile); err != nil {
			return err
		}
		logSuccess(i18n.T("Formatting preview has been generated in %s"), a.previewFile)
	}

	if rep.Warnings > 0 {
		fmt.Printf(i18n.T("Warnings: %d")+"\n", rep.Warnings)
	}
	if rep.FatalErrors > 0 {
		fmt.Printf(i18n.T("Fatal errors: %d")+"\n", rep.FatalErrors)
	}
	if rep.Errors > 0 {
		fmt.Printf(i18n.T("Errors: %d")+"\n", rep.Errors)
	}
	if rep.HasErrors() {
		os.Exit(1)
	}
	fmt.Println(i18n.T("No errors found"))
	return nil
}

// validateShowLang checks the selector against the supported tag list
// (or the list configured in .loccheck.yaml), accepting case and
// separator variants.
func validateShowLang(showLang *string, cfg *config.File) error {
	if cfg != nil && len(cfg.Languages) > 0 {
		for _, lang := range cfg.Languages {
			if lang == *showLang {
				return nil
			}
		}
		return fmt.Errorf("unsupported language %q, expected one of: %s",
			*showLang, strings.Join(cfg.Languages, ", "))
	}

	if resolved := langmeta.Resolve(*showLang); resolved != "" {
		*showLang = resolved
		return nil
	}
	return fmt.Errorf("unsupported language %q, expected one of: %s",
		*showLang, strings.Join(langmeta.Supported(), ", "))
}

// resolveFiles determines the file list: argv, --index, config, then
// index.json in the project root.
func resolveFiles(a checkArgs, cfg *config.File) ([]string, error) {
	if len(a.files) > 0 {
		return a.files, nil
	}
	if a.indexFile != "" {
		return config.LoadIndex(a.indexFile)
	}
	if cfg != nil {
		if len(cfg.Files) > 0 {
			files := make([]string, len(cfg.Files))
			for i, f := range cfg.Files {
				if filepath.IsAbs(f) {
					files[i] = f
				} else {
					files[i] = filepath.Join(rootDir, f)
				}
			}
			return files, nil
		}
		if cfg.Index != "" {
			idx := cfg.Index
			if !filepath.IsAbs(idx) {
				idx = filepath.Join(rootDir, idx)
			}
			return config.LoadIndex(idx)
		}
	}
	defaultIndex := filepath.Join(rootDir, config.IndexFileName)
	if _, err := os.Stat(defaultIndex); err == nil {
		return config.LoadIndex(defaultIndex)
	}
	return nil, nil
}
