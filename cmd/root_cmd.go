package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UltraVanilla/BlockGameKeyValue/parse/kv"
	"github.com/UltraVanilla/BlockGameKeyValue/pkg"
)

type LogParams struct {
	Level  string `json:"level"`  // 日志级别
	Format string `json:"format"` // 日志格式 text/json
}

var logParams = &LogParams{}

var rootCmd = &cobra.Command{
	Use:   "bgkv",
	Short: "bgkv decodes the block game custom form format.",
	Long: "bgkv decodes the tab-separated key/value custom form format sent by block game servers " +
		"and prints it as JSON, YAML or plain text.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		pkg.SetupLogger(cmd.ErrOrStderr(), logParams.Level, logParams.Format)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// parse failures are already logged with their structured detail
		if !errors.Is(err, kv.ErrParse) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bgkv",
	Long:  `All software has versions. This is bgkv's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "bgkv v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logParams.Level, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logParams.Format, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
}
