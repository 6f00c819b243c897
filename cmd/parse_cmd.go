package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/UltraVanilla/BlockGameKeyValue/parse"
	"github.com/UltraVanilla/BlockGameKeyValue/parse/kv"
	"github.com/UltraVanilla/BlockGameKeyValue/pkg"
)

type ParseParams struct {
	Find         string `json:"find"`          // 查找的key
	Input        string `json:"input"`         // 输入文件路径, "-" 为标准输入
	Output       string `json:"output"`        // 输出文件地址, "-" 为标准输出
	Format       string `json:"format"`        // 输出格式 json/yaml/text
	MaximumSize  int    `json:"maximum_size"`  // 最大字符数
	MaximumLines int    `json:"maximum_lines"` // 最大行数
}

var params *ParseParams

var createOutput = pkg.CreateOutput

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "custom form parse tools",
	RunE:  parseRun,
}

func init() {
	params = &ParseParams{}
	parseCmd.Flags().StringVarP(&params.Find, "find", "f", "", "print only the value of this key")
	parseCmd.Flags().StringVarP(&params.Input, "input", "i", "-", "input file path")
	parseCmd.Flags().StringVarP(&params.Output, "output", "o", "-", "output path")
	parseCmd.Flags().StringVar(&params.Format, "format", string(parse.Formats.JSON), "output format (json, yaml, text)")
	parseCmd.Flags().IntVar(&params.MaximumSize, "max-size", kv.DefaultMaximumSize, "maximum payload size in characters")
	parseCmd.Flags().IntVar(&params.MaximumLines, "max-lines", kv.DefaultMaximumLines, "maximum number of lines")
}

func parseRun(cmd *cobra.Command, args []string) error {
	format, err := parse.ParseFormat(params.Format)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if params.Input != "" && params.Input != "-" {
		f, err := pkg.OpenInput(params.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	logger := slog.Default().With(slog.String("input", params.Input))
	logger.Debug("parsing form",
		slog.Int("maximum_size", params.MaximumSize),
		slog.Int("maximum_lines", params.MaximumLines))

	m, err := parse.Decode(in,
		parse.WithMaximumSize(params.MaximumSize),
		parse.WithMaximumLines(params.MaximumLines))
	if err != nil {
		logger.Error("parse failed", slog.Any("error", err))
		return err
	}
	logger.Info("parsed form", slog.Int("entries", m.Len()))

	if params.Output == "" || params.Output == "-" {
		return writeResult(cmd.OutOrStdout(), m, format)
	}

	f, err := createOutput(params.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeResult(f, m, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeResult(out io.Writer, m *kv.OrderedMap, format parse.Format) error {
	if params.Find != "" {
		v, ok := m.Get(params.Find)
		if !ok {
			return fmt.Errorf("key %q not found", params.Find)
		}
		_, err := fmt.Fprintln(out, v)
		return err
	}

	return parse.Encode(out, m, format)
}
