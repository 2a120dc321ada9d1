package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"search_ui/internal/core"
	"search_ui/internal/web_server"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envPath string

	cmd := &cobra.Command{
		Use:           "web_server",
		Short:         "Web interface of the vacancy search",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envPath)
		},
	}

	cmd.Flags().StringVar(&envPath, "env", ".env", "path to .env file")
	return cmd
}

func serve(envPath string) error {
	// обработка возможной паники
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("Поймали панику:", r)
		}
	}()

	// Создаем корневой контекст
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем общие зависимости
	deps, err := core.InitDependencies(ctx, envPath)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	defer logger.Sync()

	if deps.Config.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Создаем HTTP-сервер
	server, err := web_server.NewSearchUIServer(deps.Config.ServerConf, deps.SearchHandler, deps.Sessions, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// создаём канал, который бдут реагировать на системные сигналы
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	// Запуск сервера
	go func() {
		fmt.Printf("🚀 Веб-интерфейс поиска вакансий запускается на http://%s\n", deps.Config.ServerConf.Addr())
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидание сигнала (или падения сервера)
	var runErr error
	select {
	case <-sigChan:
		fmt.Println("\n🛑 Остановка веб-интерфейса поиска...")
	case runErr = <-serverErr:
		logger.Error("server failed", "err", runErr)
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, deps.Config.ServerConf.ShutdownTimeout)
	defer shutdownCancel()

	// Остановка сервера
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "err", err)
	}

	fmt.Println("👋 Веб-интерфейс поиска остановлен")
	return runErr
}
