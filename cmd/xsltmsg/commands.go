package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/loopcontext/xsltmsg"
	"github.com/loopcontext/xsltmsg/catalogs"
	"github.com/loopcontext/xsltmsg/i18nstore"
	"github.com/loopcontext/xsltmsg/yamlstore"
	"github.com/spf13/cobra"
)

// absentArg on the command line stands for a missing (nil) argument.
const absentArg = "-"

func (a *app) renderCmd() *cobra.Command {
	var warning bool
	cmd := &cobra.Command{
		Use:   "render CODE [ARG...]",
		Short: "Render one diagnostic",
		Long: `Render one diagnostic. Without ARGs the template is printed verbatim;
pass "-" for an argument that is absent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			var msgArgs []any
			if len(args) > 1 {
				msgArgs = make([]any, 0, len(args)-1)
				for _, arg := range args[1:] {
					if arg == absentArg {
						msgArgs = append(msgArgs, nil)
						continue
					}
					msgArgs = append(msgArgs, arg)
				}
			}

			domain := a.v.GetString("domain")
			create := svc.CreateMessage
			if warning {
				create = svc.CreateWarning
			}
			text, err := create(domain, args[0], msgArgs)
			if text != "" {
				fmt.Fprintln(a.stdout, text)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&warning, "warning", false, "render as a warning")
	return cmd
}

func (a *app) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the catalog a domain resolves to for the locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			catalog, err := svc.Catalog(a.v.GetString("domain"))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, catalog.Name())
			return nil
		},
	}
}

func (a *app) codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the diagnostic codes of the resolved catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			catalog, err := svc.Catalog(a.v.GetString("domain"))
			if err != nil {
				return err
			}
			for _, code := range catalog.Codes() {
				fmt.Fprintln(a.stdout, code)
			}
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare every localized catalog of the domain with its base catalog",
		Long: `Compare every localized catalog of the domain with its base catalog.
Embedded catalogs are checked, and so are the .yaml, .toml and .json
catalogs in --catalog-dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := a.v.GetString("domain")
			names, err := a.catalogNames(domain)
			if err != nil {
				return err
			}
			store := a.store()
			base, err := store.LoadCatalog(domain, domain)
			if err != nil {
				return err
			}

			severe := 0
			for _, name := range names {
				catalog, err := store.LoadCatalog(domain, name)
				if err != nil {
					return err
				}
				for _, issue := range xsltmsg.CompareShape(base, catalog) {
					fmt.Fprintln(a.stdout, issue)
					if issue.Severe() {
						severe++
					}
				}
			}
			if severe > 0 {
				return fmt.Errorf("%d catalog problem(s) in domain %q", severe, domain)
			}
			fmt.Fprintf(a.stdout, "%d catalog(s) checked\n", len(names))
			return nil
		},
	}
}

type catalogLister interface {
	Names() ([]string, error)
}

// catalogNames lists the catalogs of domain: embedded ones plus the YAML and
// go-i18n files in --catalog-dir, sorted and without duplicates.
func (a *app) catalogNames(domain string) ([]string, error) {
	stores := []catalogLister{catalogs.Store()}
	if dir := a.v.GetString("catalog-dir"); dir != "" {
		fsys := os.DirFS(dir)
		stores = append(stores, yamlstore.New(fsys, "."), i18nstore.New(fsys, "."))
	}
	seen := map[string]struct{}{}
	var names []string
	for _, store := range stores {
		all, err := store.Names()
		if err != nil {
			return nil, err
		}
		for _, name := range all {
			if name != domain && !strings.HasPrefix(name, domain+"_") {
				continue
			}
			if _, found := seen[name]; found {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
