// tcctl 培训中心管理命令行：创建、筛选列表、交互式筛选。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"traini8/config"
	"traini8/internal/client"
	applogger "traini8/pkg/logger"
)

var (
	configPath string
	baseURL    string
	verbose    bool
	jsonOutput bool

	cfg    *config.Config
	logger *zap.Logger
	api    *client.Client
)

var rootCmd = &cobra.Command{
	Use:           "tcctl",
	Short:         "Manage training centers",
	Long:          `Command line admin for the training center registry: create centers and browse them with filters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if baseURL != "" {
			cfg.Client.BaseURL = baseURL
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		// 命令行默认输出人类可读日志
		if !cmd.Flags().Changed("config") && os.Getenv("TRAINI8_LOG_FORMAT") == "" {
			cfg.Log.Format = "console"
		}

		logger, err = applogger.NewLogger(&cfg.Log)
		if err != nil {
			return err
		}
		api = client.New(cfg.Client.BaseURL, cfg.Client.Timeout, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Server base URL (overrides client.base_url)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
