// команда vacancy-search: терминальный интерфейс поиска вакансий
package cli

import (
	"errors"
	"fmt"
	"search_ui/configs"
	"search_ui/internal/search_client"
	"search_ui/internal/search_view"
	"search_ui/internal/tui"
	"search_ui/pkg/logging"

	"github.com/spf13/cobra"
)

// поиск в неинтерактивном режиме закончился ошибкой (сообщение уже напечатано)
var ErrSearchFailed = errors.New("search failed")

type options struct {
	query      string
	backendURL string
	envPath    string
	logLevel   string
	logFile    string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vacancy-search",
		Short: "Search vacancies from the terminal",
		Long: `vacancy-search sends a free-text query to the vacancy search backend
and shows the found vacancies as a table.

Without --query it starts an interactive screen: type a query, press Enter to search,
Esc to quit. With --query it searches once, prints the result and exits
(exit code 1 when the search ends with an error).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "search once with this query and exit")
	cmd.Flags().StringVar(&opts.backendURL, "backend-url", "", "search backend base address (overrides config)")
	cmd.Flags().StringVar(&opts.envPath, "env", ".env", "path to .env file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "vacancy-search.log", "log file (empty: stderr in one-shot mode, no logs in interactive mode)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	conf, err := configs.LoadConfig(opts.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.backendURL != "" {
		conf.SearchClient.BaseURL = opts.backendURL
	}
	if opts.logLevel != "" {
		conf.Logger.Level = opts.logLevel
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	oneShot := cmd.Flags().Changed("query")

	logger, err := newLogger(conf.Logger, opts.logFile, oneShot)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Sync()

	client, err := search_client.NewSearchClient(conf.SearchClient, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}
	view := search_view.NewSearchView(client, logger)

	if !oneShot {
		return tui.Run(cmd.Context(), view)
	}

	state, err := tui.RunOnce(cmd.Context(), view, opts.query, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, failed := state.Error(); failed {
		return ErrSearchFailed
	}
	return nil
}

// интерактивный экран занимает терминал, поэтому логи пишем только в файл
// (файл, который не удалось открыть, - ошибка, а не тихий переход на stderr)
func newLogger(conf *configs.LoggerConfig, logFile string, oneShot bool) (*logging.Logger, error) {
	switch {
	case logFile != "":
		return logging.New(conf.Level, logFile)
	case oneShot:
		return logging.New(conf.Level, "stderr")
	default:
		return logging.NewNop(), nil
	}
}
