package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yqhp/reports/common/database"
	"yqhp/reports/common/logger"
	"yqhp/reports/internal/auth"
	"yqhp/reports/internal/logic"
	"yqhp/reports/internal/router"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动报表后台 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close()

		if seed {
			if err := logic.SeedDefaults(database.GetDB()); err != nil {
				return fmt.Errorf("初始化默认数据失败: %w", err)
			}
		}

		if err := auth.InitSaToken(&cfg.Config); err != nil {
			return fmt.Errorf("初始化SaToken失败: %w", err)
		}

		app := router.NewApp(cfg.App.Name)
		router.Setup(app)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		errCh := make(chan error, 1)
		go func() {
			logger.Info("服务器启动", zap.String("addr", addr))
			errCh <- app.Listen(addr)
		}()

		// 优雅关闭
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("服务器启动失败: %w", err)
		case <-quit:
		}

		logger.Info("正在关闭服务器...")
		if err := app.Shutdown(); err != nil {
			logger.Error("服务器关闭失败", zap.Error(err))
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&seed, "seed", true, "空库时创建默认管理员")
}
