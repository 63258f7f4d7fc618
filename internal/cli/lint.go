package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-headtags/pkg/validation"
)

type violation struct {
	file  string
	head  string
	issue validation.Issue
}

func newLintCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [names...]",
		Short: "Report suspicious declarations in head files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd); err != nil {
				return err
			}
			store, err := app.loadStore()
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = store.Names()
			}

			var violations []violation
			for _, name := range names {
				doc, ok := store.Get(name)
				if !ok {
					return fmt.Errorf("cli: head %q not found", name)
				}
				for _, issue := range validation.ValidateSequence(doc.Declarations).Issues {
					violations = append(violations, violation{file: doc.Source, head: name, issue: issue})
				}
			}

			if len(violations) == 0 {
				app.logger.Info("lint.clean", "heads", len(names))
				return nil
			}

			sort.SliceStable(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					return violations[i].head < violations[j].head
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				if _, err := fmt.Fprintf(app.stdout, "%s: %s%s\n", v.file, v.head, v.issue); err != nil {
					return err
				}
			}
			return fmt.Errorf("cli: lint found %d issue(s)", len(violations))
		},
	}
}
