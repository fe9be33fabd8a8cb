// Package cli 提供报表服务的命令行入口
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// 注册内置报表
	_ "yqhp/reports/internal/reports"
)

// Version 当前版本号
const Version = "0.1.0"

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:     "reports",
	Short:   "CMS 报表后台服务",
	Version: Version,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径，默认读取 REPORTS_CONFIG 或 config/config.yml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "环境变量文件")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd, listCmd)
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}
