package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/pablasso/taskcli/internal/config"
	"github.com/pablasso/taskcli/internal/display"
	"github.com/pablasso/taskcli/internal/logging"
	"github.com/pablasso/taskcli/internal/store"
	"github.com/pablasso/taskcli/internal/tasks"
	"github.com/pablasso/taskcli/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the dependencies shared by every subcommand. It is filled in
// by the root command's PersistentPreRunE once flags have been parsed.
type app struct {
	viper      *viper.Viper
	configFile string

	cfg     config.Config
	logger  *log.Logger
	store   *store.Store
	service *tasks.Service
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.viper, a.configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logger.Debug("using config file", "path", cfg.Source)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store.NewOs(cfg.File, store.WithLogger(logger))
	a.service = tasks.NewService(a.store, tasks.WithLogger(logger))
	return nil
}

func (a *app) printer(cmd *cobra.Command) *display.Printer {
	return display.New(cmd.OutOrStdout())
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "taskcli",
		Short: "Track tasks from the command line",
		Long: `taskcli keeps a list of tasks in a local JSON file (tasks.json by default).
Run without arguments to browse tasks interactively, or to print the task
table when output is not a terminal.`,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Argument validation has already passed; later failures are not usage errors.
			cmd.SilenceUsage = true
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return runList(a, cmd, "")
			}
			return runBrowse(a, "")
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("taskcli %s\n", version.String()))

	flags := cmd.PersistentFlags()
	flags.StringP("file", "f", "", "tasks file (default tasks.json)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	flags.StringVar(&a.configFile, "config", "", "config file (default ./.taskcli.yaml or $HOME/.taskcli.yaml)")

	_ = a.viper.BindPFlag(config.KeyFile, flags.Lookup("file"))
	_ = a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newBrowseCmd(a),
	)
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
