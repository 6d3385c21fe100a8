package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/jsontree/cli"
	"github.com/grovetools/jsontree/config"
	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/errors"
	"github.com/grovetools/jsontree/explorer"
	"github.com/grovetools/jsontree/logging"
	"github.com/grovetools/jsontree/tui"
	jsontreeui "github.com/grovetools/jsontree/tui/components/jsontree"
	"github.com/grovetools/jsontree/tui/theme"
	"github.com/grovetools/jsontree/watch"
)

// NewRootCmd builds the jsontree root command: an interactive tree viewer
// over a JSON or YAML document read from a file or stdin.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"jsontree [file]",
		"Interactive tree viewer for JSON and YAML documents",
	)
	rootCmd.Long = `Explore a JSON or YAML document as a collapsible tree.

Reads from the given file, or from stdin when no file is passed.
Navigation is vim-style: j/k to move, space to toggle a node, / to
search, n/N to cycle through matches.

Examples:
  # View a file
  jsontree config.json

  # Pipe from another command
  curl -s https://api.example.com/status | jsontree

  # Start with every container folded and watch for changes
  jsontree --collapsed --watch deploy.yml`

	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.Flags().BoolP("watch", "w", false, "Reload the tree when the file changes")
	rootCmd.Flags().Bool("collapsed", false, "Start with every container collapsed")
	rootCmd.Flags().String("format", "", "Force the input format: json, yaml")
	rootCmd.Flags().String("theme", "", "Color theme: kanagawa, gruvbox, terminal")

	rootCmd.RunE = runView
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		cli.PrintError(c, err)
		return err
	})

	cli.SetVersionTemplate(rootCmd)
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

func runView(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return handler.Handle(err)
	}
	logging.Configure(cfg.Logging)
	logger := cli.GetLogger(cmd)

	if themeName, _ := cmd.Flags().GetString("theme"); themeName != "" {
		cfg.Theme = themeName
	}
	theme.SetDefault(cfg.Theme)
	theme.UseNerdFonts(cfg.Icons != "ascii")

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	data, err := readInput(path)
	if err != nil {
		return handler.Handle(err)
	}

	format, _ := cmd.Flags().GetString("format")
	doc, err := decode(data, path, format)
	if err != nil {
		return handler.Handle(err)
	}

	collapsed, _ := cmd.Flags().GetBool("collapsed")
	collapsed = collapsed || cfg.StartCollapsed

	store := explorer.NewStore()
	store.BuildNodes(doc, collapsed)

	// When stdout is not a terminal, print the tree once and exit instead
	// of starting the TUI.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		printPlain(os.Stdout, store)
		return nil
	}

	tui.Initialize()
	model := jsontreeui.New(store)
	if path != "" {
		model.SetTitle(filepath.Base(path))
	} else {
		model.SetTitle("stdin")
	}
	program := tea.NewProgram(viewerModel{inner: model}, tea.WithAltScreen())

	watchRequested, _ := cmd.Flags().GetBool("watch")
	if (watchRequested || cfg.Watch.Enabled) && path != "" {
		debounce := time.Duration(cfg.Watch.Debounce()) * time.Millisecond
		watcher, err := watch.New(path, debounce, func() {
			raw, readErr := os.ReadFile(path)
			if readErr != nil {
				logger.WithError(readErr).Warn("Reload read failed")
				return
			}
			reloaded, decErr := decode(raw, path, format)
			if decErr != nil {
				logger.WithError(decErr).Warn("Reload decode failed")
				return
			}
			program.Send(jsontreeui.DocumentReloadedMsg{Doc: reloaded})
		})
		if err != nil {
			return handler.Handle(err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	if _, err := program.Run(); err != nil {
		return handler.Handle(err)
	}
	return nil
}

// readInput reads the document from a file path, or stdin when path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"no input: pass a file or pipe a document to stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "reading stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput,
			fmt.Sprintf("reading %s", path))
	}
	return data, nil
}

// decode picks the decoder from the --format flag or the file extension,
// defaulting to JSON.
func decode(data []byte, path, format string) (*document.Value, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "yaml", "yml":
		return document.DecodeYAML(data)
	case "json":
		return document.DecodeJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("unknown format %q (want json or yaml)", format))
	}
}

// printPlain writes the current display list as indented text, honoring
// collapse state.
func printPlain(w io.Writer, store *explorer.Store) {
	for _, n := range store.DisplayNodes() {
		indent := strings.Repeat("  ", n.TreeDepth())
		marker := ""
		if n.IsRoot() && n.IsCollapsed() {
			marker = " +"
		}
		fmt.Fprintf(w, "%s%s: %s%s\n", indent, n.Name(), n.Value().Display(), marker)
	}
}

// viewerModel wraps the jsontree component so BackMsg quits the program.
type viewerModel struct {
	inner jsontreeui.Model
}

func (m viewerModel) Init() tea.Cmd { return m.inner.Init() }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(jsontreeui.BackMsg); ok {
		return m, tea.Quit
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	updated, cmd := m.inner.Update(msg)
	if inner, ok := updated.(jsontreeui.Model); ok {
		m.inner = inner
	}
	return m, cmd
}

func (m viewerModel) View() string { return m.inner.View() }
