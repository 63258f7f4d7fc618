package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	headtags "github.com/goliatone/go-headtags"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the heads defined under --dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.setup(cmd); err != nil {
				return err
			}
			store, err := app.loadStore()
			if err != nil {
				return err
			}
			for _, name := range store.Names() {
				doc, _ := store.Get(name)
				if _, err := fmt.Fprintf(app.stdout, "%s\t%s\t%d\n", name, doc.Source, doc.Declarations.Len()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRenderersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "renderers",
		Short: "List the available renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := headtags.NewRegistry()
			if err != nil {
				return err
			}
			fallback := registry.Default()
			for _, name := range registry.List() {
				marker := " "
				if name == fallback {
					marker = "*"
				}
				renderer := registry.MustGet(name)
				if _, err := fmt.Fprintf(app.stdout, "%s %s\t%s\n", marker, name, renderer.ContentType()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
