package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bylickilabs/GithubRepoCatalog/internal/application"
	"github.com/bylickilabs/GithubRepoCatalog/internal/catalog"
	"github.com/bylickilabs/GithubRepoCatalog/internal/logging"
	"github.com/bylickilabs/GithubRepoCatalog/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagDB      string
	flagBackend string
	flagDebug   bool

	openOnce sync.Once
	svc      *catalog.Service
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Catalog, search and archive local Git repositories",
	Long: `Repocat keeps a catalog of the Git repositories on this machine.
It scans directory trees for repositories, records their size, last
modification time and origin remote, and offers search, CSV export, zip
archiving, preview image selection and secret audits on top.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyEnvFallbacks(cmd.Root())
		logging.Setup(flagDebug)
	},
}

// applyEnvFallbacks fills persistent flags that were not set on the command
// line from matching REPOCAT_* variables, so REPOCAT_DB behaves like --db.
func applyEnvFallbacks(root *cobra.Command) {
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		env := "REPOCAT_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if value, ok := os.LookupEnv(env); ok {
			_ = f.Value.Set(value)
		}
	})
}

func Execute() {
	err := rootCmd.Execute()
	if svc != nil {
		_ = svc.Store.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// service opens the catalog store on first use. An open failure is fatal:
// it is appended to startup_error.log and the process exits.
func service() *catalog.Service {
	openOnce.Do(func() {
		st, err := openStore()
		if err != nil {
			slog.Error("failed to open catalog store", "error", err)
			if dir, dirErr := application.EnsureApplicationDirectory(); dirErr == nil {
				logging.WriteStartupError(dir, application.StartupErrorFileName, err)
			}
			os.Exit(1)
		}
		svc = catalog.NewService(st)
	})

	return svc
}

// openStore resolves the database location from the persistent flags, with
// the application directory as the fallback.
func openStore() (store.Store, error) {
	backend := store.Backend(flagBackend)

	dbPath := flagDB
	if dbPath == "" {
		dir, err := application.GetApplicationDirectory()
		if err != nil {
			return nil, err
		}

		name := application.DBFileName
		if backend == store.BackendBolt {
			name = application.BoltFileName
		}
		dbPath = filepath.Join(dir, name)
	}

	return store.Open(store.Options{Backend: backend, Path: dbPath})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "catalog database path (env REPOCAT_DB)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "catalog backend, sqlite or bolt (env REPOCAT_BACKEND)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}
