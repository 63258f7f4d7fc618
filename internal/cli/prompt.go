package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	headtags "github.com/goliatone/go-headtags"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
	"github.com/goliatone/go-headtags/pkg/render"
)

const promptDone = "done"

var promptChoices = []string{
	string(element.KindMeta),
	string(element.KindLink),
	string(element.KindScript),
	string(element.KindStyle),
	promptDone,
}

type textField struct {
	message  string
	help     string
	target   *string
	required bool
}

type boolField struct {
	message string
	target  *bool
}

func newPromptCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build a head interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.setup(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()

			var options []head.Option
			if app.cfg.BaseURL != "" {
				options = append(options, head.WithBaseURL(app.cfg.BaseURL))
			}
			builder := headtags.New(options...)

			for {
				idx, err := app.driver.Select(ctx, SelectConfig{
					Message:      "Add a declaration",
					Options:      promptChoices,
					DefaultIndex: len(promptChoices) - 1,
				})
				if err != nil {
					return err
				}
				if idx < 0 || promptChoices[idx] == promptDone {
					break
				}

				decl, err := promptDeclaration(ctx, app.driver, element.Kind(promptChoices[idx]))
				if err != nil {
					return err
				}
				builder.Add(decl)
				if err := app.driver.Info(ctx, fmt.Sprintf("added %s (%d total)", decl.Kind, builder.Len())); err != nil {
					return err
				}
			}

			registry, err := headtags.NewRegistry()
			if err != nil {
				return err
			}
			baseURL, _ := builder.BaseURL()
			out, _, err := registry.Render(ctx, app.cfg.Renderer, builder.Build(), render.RenderOptions{BaseURL: baseURL})
			if err != nil {
				return err
			}
			_, err = app.stdout.Write(out)
			return err
		},
	}

	cmd.Flags().String("renderer", "html", "renderer to use (html, templ, json, yaml)")
	cmd.Flags().String("base-url", "", "base URL recorded on the builder")
	return cmd
}

func promptDeclaration(ctx context.Context, driver PromptDriver, kind element.Kind) (element.Declaration, error) {
	switch kind {
	case element.KindMeta:
		var attrs element.MetaAttrs
		err := askText(ctx, driver,
			textField{message: "charset", help: "usually utf-8; leave empty otherwise", target: &attrs.CharSet},
			textField{message: "name", target: &attrs.Name},
			textField{message: "property", help: "Open Graph style property, e.g. og:title", target: &attrs.Property},
			textField{message: "content", target: &attrs.Content},
		)
		return element.Meta(attrs), err
	case element.KindLink:
		var attrs element.LinkAttrs
		err := askText(ctx, driver,
			textField{message: "rel", target: &attrs.Rel, required: true},
			textField{message: "href", target: &attrs.Href, required: true},
			textField{message: "type", target: &attrs.Type},
			textField{message: "media", target: &attrs.Media},
		)
		return element.Link(attrs), err
	case element.KindScript:
		var attrs element.ScriptAttrs
		if err := askText(ctx, driver,
			textField{message: "src", help: "leave empty for an inline script", target: &attrs.Src},
			textField{message: "type", target: &attrs.Type},
		); err != nil {
			return element.Declaration{}, err
		}
		if attrs.Src == "" {
			if err := askText(ctx, driver, textField{message: "body", target: &attrs.Body, required: true}); err != nil {
				return element.Declaration{}, err
			}
			return element.Script(attrs), nil
		}
		err := askBool(ctx, driver,
			boolField{message: "async", target: &attrs.Async},
			boolField{message: "defer", target: &attrs.Defer},
		)
		return element.Script(attrs), err
	case element.KindStyle:
		var attrs element.StyleAttrs
		err := askText(ctx, driver,
			textField{message: "media", target: &attrs.Media},
			textField{message: "body", target: &attrs.Body, required: true},
		)
		return element.Style(attrs), err
	default:
		return element.Declaration{}, fmt.Errorf("%w %q", element.ErrUnknownKind, kind)
	}
}

func askText(ctx context.Context, driver PromptDriver, fields ...textField) error {
	for _, field := range fields {
		cfg := InputConfig{Message: field.message, Help: field.help}
		if field.required {
			cfg.Validator = requireValue
		}
		value, err := driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if field.required && value == "" {
			return fmt.Errorf("cli: %s is required", field.message)
		}
		*field.target = value
	}
	return nil
}

func askBool(ctx context.Context, driver PromptDriver, fields ...boolField) error {
	for _, field := range fields {
		value, err := driver.Confirm(ctx, ConfirmConfig{Message: field.message})
		if err != nil {
			return err
		}
		*field.target = value
	}
	return nil
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}
