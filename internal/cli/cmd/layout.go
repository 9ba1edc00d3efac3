package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

var (
	layoutJSON  bool
	layoutPlain bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage saved layouts",
	Long: `Inspect, export, import and delete saved shell layouts.

A layout records which widgets live in each area, their order and which
ones were active. The shell saves one under the configured layout name and
can restore it on startup.`,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Args:  cobra.NoArgs,
	RunE:  runLayoutList,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the widget tree of a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutShow,
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutDelete,
}

var layoutExportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Write a saved layout as JSON to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutExport,
}

var layoutImportCmd = &cobra.Command{
	Use:   "import NAME FILE",
	Short: "Store a JSON layout under NAME",
	Long: `Read a layout previously written by 'workbench layout export' and store it
under NAME, replacing any layout with that name. Use - to read from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runLayoutImport,
}

var layoutSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of exported layouts",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := layoutSchemaJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd, layoutShowCmd, layoutDeleteCmd, layoutExportCmd, layoutImportCmd, layoutSchemaCmd)

	layoutListCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
	layoutListCmd.Flags().BoolVar(&layoutPlain, "plain", false, "output as a plain table")
}

func runLayoutList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	infos, err := a.ManageLayoutsUC.List(a.Ctx())
	if err != nil {
		return err
	}

	switch {
	case layoutJSON:
		return outputLayoutsJSON(os.Stdout, infos)
	case layoutPlain:
		return outputLayoutsTable(os.Stdout, infos)
	default:
		fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderList(infos, time.Now()))
		return nil
	}
}

func runLayoutShow(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewLayoutRenderer(a.Theme)

	out, err := a.RestoreLayoutUC.Execute(a.Ctx(), usecase.RestoreLayoutInput{Name: args[0]})
	if err != nil {
		return layoutError(args[0], err)
	}
	fmt.Println(renderer.RenderLayout(args[0], out.Data))
	return nil
}

func runLayoutDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.ManageLayoutsUC.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderDeleted(args[0]))
	return nil
}

func runLayoutExport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out, err := a.RestoreLayoutUC.Execute(a.Ctx(), usecase.RestoreLayoutInput{Name: args[0]})
	if err != nil {
		return layoutError(args[0], err)
	}
	return writeJSON(os.Stdout, out.Data)
}

func runLayoutImport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open layout file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := importLayout(a.Ctx(), a.SnapshotLayoutUC, args[0], r)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderImported(args[0], data.CountWidgets()))
	return nil
}

// importLayout decodes a layout from r and stores it under name.
func importLayout(
	ctx context.Context,
	snapshot *usecase.SnapshotLayoutUseCase,
	name string,
	r io.Reader,
) (*entity.LayoutData, error) {
	var data entity.LayoutData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if data.Version > entity.LayoutDataVersion {
		return nil, fmt.Errorf("%w: file is v%d, this build reads up to v%d",
			usecase.ErrLayoutVersionMismatch, data.Version, entity.LayoutDataVersion)
	}

	if err := snapshot.Execute(ctx, usecase.SnapshotLayoutInput{Name: name, Data: &data}); err != nil {
		return nil, err
	}
	return &data, nil
}

func layoutError(name string, err error) error {
	if errors.Is(err, usecase.ErrLayoutNotFound) {
		return fmt.Errorf("no layout named %q", name)
	}
	return err
}

// layoutSchemaJSON returns the JSON schema of entity.LayoutData.
func layoutSchemaJSON() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.LayoutData{})
	schema.Title = "Workbench Layout"
	schema.Description = "Saved arrangement of widgets in the workbench shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout schema: %w", err)
	}
	return data, nil
}

func outputLayoutsJSON(w io.Writer, infos []entity.LayoutInfo) error {
	type layoutJSONInfo struct {
		Name        string    `json:"name"`
		Version     int       `json:"version"`
		WidgetCount int       `json:"widget_count"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	out := make([]layoutJSONInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, layoutJSONInfo(info))
	}
	return writeJSON(w, out)
}

func outputLayoutsTable(w io.Writer, infos []entity.LayoutInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No saved layouts.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tVERSION\tWIDGETS\tUPDATED")
	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n",
			info.Name,
			info.Version,
			info.WidgetCount,
			info.UpdatedAt.Format(time.DateTime),
		)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
