package main

import (
	"io"
	"os"
	"strings"

	"github.com/loopcontext/xsltmsg"
	"github.com/loopcontext/xsltmsg/catalogs"
	"github.com/loopcontext/xsltmsg/i18nstore"
	"github.com/loopcontext/xsltmsg/internal/logging"
	"github.com/loopcontext/xsltmsg/yamlstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}
	a.v.SetEnvPrefix("XSLTMSG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "xsltmsg",
		Short:         "Render XSLT and XPath diagnostics from the message catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("domain", xsltmsg.DomainXSLT, "diagnostic domain (xslt or xpath)")
	flags.String("locale", "", "catalog locale, e.g. ja or zh_TW (default: from LC_ALL/LC_MESSAGES/LANG)")
	flags.String("catalog-dir", "", "directory with extra catalogs (.yaml, or go-i18n .toml/.json), searched before the embedded ones")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	for _, name := range []string{"domain", "locale", "catalog-dir", "log-level"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(a.renderCmd(), a.resolveCmd(), a.codesCmd(), a.checkCmd())
	return root
}

func (a *app) store() xsltmsg.CatalogStore {
	var store xsltmsg.CatalogStore = catalogs.Store()
	if dir := a.v.GetString("catalog-dir"); dir != "" {
		fsys := os.DirFS(dir)
		store = xsltmsg.ChainStore(yamlstore.New(fsys, "."), i18nstore.New(fsys, "."), store)
	}
	return store
}

func (a *app) newService() (*xsltmsg.DefaultMessageService, error) {
	return xsltmsg.NewMessageService(xsltmsg.Config{
		Locale: a.v.GetString("locale"),
		Store:  a.store(),
		Logger: logging.NewWithWriter(a.v.GetString("log-level"), a.stderr),
	})
}
