package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/htmldoc"
	"github.com/agiangrant/lunasync/internal/script"
)

type exportOptions struct {
	output   string
	script   string
	scrollY  float64
	viewport float64
	sections map[string]int
	reveal   bool
	menu     bool
	name     string
	email    string
	message  string
	submit   bool
}

func newExportCommand(a *app) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static HTML snapshot of the page",
		Long: `Export renders the page in a given state to a static HTML file.

The state is built either from a replay script (--script) or from flags:
scroll position and section offsets, the mobile menu, form values and a
submit. Use --output - to write to stdout.`,
		Example: `  lunasync export
  lunasync export --menu --scroll 120 --output menu.html
  lunasync export --email nope --submit --output errors.html
  lunasync export --script demo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default from config)")
	f.StringVar(&opts.script, "script", "", "replay script to build the state from")
	f.Float64Var(&opts.scrollY, "scroll", 0, "scroll position in px")
	f.Float64Var(&opts.viewport, "viewport", 900, "viewport height in px")
	f.StringToIntVar(&opts.sections, "section", nil, "section top offset in px, e.g. features=800")
	f.BoolVar(&opts.reveal, "reveal", true, "mark every section as revealed (ignored with --section or --script)")
	f.BoolVar(&opts.menu, "menu", false, "open the mobile menu")
	f.StringVar(&opts.name, "name", "", "contact form name")
	f.StringVar(&opts.email, "email", "", "contact form email")
	f.StringVar(&opts.message, "message", "", "contact form message")
	f.BoolVar(&opts.submit, "submit", false, "submit the contact form")
	return cmd
}

func runExport(cmd *cobra.Command, a *app, opts exportOptions) error {
	content, err := a.content()
	if err != nil {
		return err
	}

	cfg := content.ControllerConfig()
	cfg.Logger = a.logger
	ctrl := lunasync.NewController(cfg)

	if opts.script != "" {
		s, err := script.Load(opts.script)
		if err != nil {
			return err
		}
		if err := s.Replay(ctrl, func(script.Result) error { return nil }); err != nil {
			return err
		}
	} else {
		applyFlags(cmd, ctrl, content, opts)
	}

	page := lunasync.BuildPage(ctrl.State(), content, lunasync.ViewOptions{Year: a.year()})
	doc := htmldoc.PageConfig{
		Title:       a.config.Site.Title,
		Description: a.config.Site.Description,
		NoScripts:   a.config.Export.NoScripts,
	}

	output := opts.output
	if output == "" {
		output = a.config.Export.Output
	}
	if output == "-" {
		return htmldoc.Write(cmd.OutOrStdout(), doc, page)
	}

	if err := writeFile(output, func(w io.Writer) error { return htmldoc.Write(w, doc, page) }); err != nil {
		return err
	}
	a.logger.Info("page exported", zap.String("output", output))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", output)
	return nil
}

// applyFlags dispatches the events the export flags describe, in page order:
// geometry, menu, fields, submit.
func applyFlags(cmd *cobra.Command, ctrl *lunasync.Controller, content *lunasync.Content, opts exportOptions) {
	m := lunasync.Measurements{ScrollY: opts.scrollY, ViewportHeight: opts.viewport}
	if len(opts.sections) > 0 {
		for _, id := range content.SectionIDs() {
			if top, ok := opts.sections[id]; ok {
				m.Sections = append(m.Sections, lunasync.SectionOffset{ID: id, Top: float64(top)})
			}
		}
	} else if opts.reveal {
		// Every section at the very top of the page is inside any viewport.
		for _, id := range content.SectionIDs() {
			m.Sections = append(m.Sections, lunasync.SectionOffset{ID: id, Top: 0})
		}
	}
	ctrl.Scroll(m)

	if opts.menu {
		ctrl.ToggleMenu()
	}

	// The form flags are named after the fields.
	values := map[lunasync.Field]string{
		lunasync.FieldName:    opts.name,
		lunasync.FieldEmail:   opts.email,
		lunasync.FieldMessage: opts.message,
	}
	for _, f := range lunasync.Fields {
		if cmd.Flags().Changed(string(f)) {
			ctrl.SetField(f, values[f])
		}
	}

	if opts.submit {
		ctrl.Submit()
	}
}

// writeFile renders into path. A failed render or close removes the partial file.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
