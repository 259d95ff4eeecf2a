// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/extkit/extkit/pkg/strcase"

	"github.com/spf13/cobra"
)

var caseConverters = map[string]func(string) string{
	"snake": strcase.Underscore,
	"camel": strcase.Camelize,
	"lower": strcase.CamelizeLower,
}

func newCaseCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "case <snake|camel|lower> <word...>",
		Short: "Convert identifiers between naming conventions",
		Long: `Convert identifiers between naming conventions, one result per line.

  snake   Web.HTTPRouter -> web/http_router
  camel   web/http_router -> Web.HttpRouter
  lower   pool_size -> poolSize`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"snake", "camel", "lower"},
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := caseConverters[args[0]]
			if !ok {
				return usageError(fmt.Errorf("unknown case %q (valid: snake, camel, lower)", args[0]))
			}
			for _, word := range args[1:] {
				if _, err := fmt.Fprintln(app.stdout, convert(word)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
