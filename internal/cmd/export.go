package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	httpadapter "backoffice/internal/adapter/http"
	"backoffice/internal/adapter/usecase"
)

var exportFlags struct {
	out     string
	search  string
	status  string
	filters map[string]string
}

var exportCmd = &cobra.Command{
	Use:   "export <resource>",
	Short: "Write one resource as CSV",
	Long: `Write the records of one resource as CSV to stdout or to --out.

Resources: ` + strings.Join(httpadapter.Resources, ", ") + `

The filter flags behave like the query parameters of the listing
endpoints. Page specific selectors are passed with --filter, for example
--filter position=hero --filter type=seasonal.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return httpadapter.Resources, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		resource := args[0]
		if !slices.Contains(httpadapter.Resources, resource) {
			return fmt.Errorf("unknown resource %q", resource)
		}

		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.close()
		if err = a.seedIfEmpty(cmd.Context()); err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportFlags.out != "" {
			f, err := os.Create(exportFlags.out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		svc := usecase.NewConsoleUseCase(usecase.Deps{Repos: a.repos, Logger: a.logger})
		return httpadapter.ExportCSV(cmd.Context(), svc, resource, exportQuery(), w)
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFlags.out, "out", "o", "", "output file (default stdout)")
	f.StringVar(&exportFlags.search, "search", "", "case-insensitive search text")
	f.StringVar(&exportFlags.status, "status", "", "status selector")
	f.StringToStringVar(&exportFlags.filters, "filter", nil, "additional selector as key=value")
	rootCmd.AddCommand(exportCmd)
}

func exportQuery() url.Values {
	q := url.Values{}
	for k, v := range exportFlags.filters {
		q.Set(k, v)
	}
	if exportFlags.search != "" {
		q.Set("search", exportFlags.search)
	}
	if exportFlags.status != "" {
		q.Set("status", exportFlags.status)
	}
	return q
}
