package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	headtags "github.com/goliatone/go-headtags"
	"github.com/goliatone/go-headtags/pkg/render"
	"github.com/goliatone/go-headtags/pkg/renderers/markup"
)

const watchDebounce = 150 * time.Millisecond

type renderFlags struct {
	resolve bool
	strict  bool
	watch   bool
	indent  string
	kinds   string
	rels    string
	names   string
}

func (f renderFlags) subset() render.Subset {
	return render.Subset{
		Kinds: render.ParseTokenList(f.kinds),
		Rels:  render.ParseTokenList(f.rels),
		Names: render.ParseTokenList(f.names),
	}
}

func newRenderCommand(app *App) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Render a named head with the selected renderer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()
			name := args[0]

			if err := app.renderHead(ctx, name, flags); err != nil {
				return err
			}
			if !flags.watch {
				return nil
			}

			app.logger.Info("watch.started", "dir", app.cfg.Dir, "head", name)
			return watchDir(ctx, app.cfg.Dir, watchDebounce, app.logger, func(paths []string) error {
				app.logger.Info("watch.changed", "paths", paths)
				return app.renderHead(ctx, name, flags)
			})
		},
	}

	cmd.Flags().String("renderer", "html", "renderer to use (html, templ, json, yaml)")
	cmd.Flags().String("base-url", "", "base URL, overrides the head file baseUrl")
	cmd.Flags().BoolVar(&flags.resolve, "resolve", false, "resolve link and script URLs against the base URL")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "strip markup from meta content and link titles")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-render when head files change")
	cmd.Flags().StringVar(&flags.indent, "indent", "", "prefix for each rendered line")
	cmd.Flags().StringVar(&flags.kinds, "kind", "", "only render these kinds, comma separated")
	cmd.Flags().StringVar(&flags.rels, "rel", "", "only render links with these rel tokens, comma separated")
	cmd.Flags().StringVar(&flags.names, "name", "", "only render metas with these names or properties, comma separated")
	return cmd
}

func (a *App) renderHead(ctx context.Context, name string, flags renderFlags) error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}
	doc, ok := store.Get(name)
	if !ok {
		return fmt.Errorf("cli: head %q not found (available: %s)", name, strings.Join(store.Names(), ", "))
	}

	builder := doc.Builder()
	baseURL := a.cfg.BaseURL
	if baseURL == "" {
		baseURL, _ = builder.BaseURL()
	}

	var markupOptions []markup.Option
	if flags.strict {
		markupOptions = append(markupOptions, markup.WithStrictText())
	}
	registry, err := headtags.NewRegistry(markupOptions...)
	if err != nil {
		return err
	}

	out, _, err := registry.Render(ctx, a.cfg.Renderer, builder.Build(), render.RenderOptions{
		BaseURL:     baseURL,
		ResolveURLs: flags.resolve,
		Indent:      flags.indent,
		Subset:      flags.subset(),
	})
	if err != nil {
		return err
	}
	a.logger.Debug("head.rendered", "head", name, "renderer", a.cfg.Renderer, "bytes", len(out))
	_, err = a.stdout.Write(out)
	return err
}
