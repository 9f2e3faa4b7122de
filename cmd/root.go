package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/narasux/fprim/pkg/common/errcode"
	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/logging"
	"github.com/narasux/fprim/pkg/query"
	"github.com/narasux/fprim/pkg/report"
	"github.com/narasux/fprim/pkg/storage"
	"github.com/narasux/fprim/pkg/version"
)

// rootOptions 根命令的参数
type rootOptions struct {
	energies    []float64
	wavelengths []float64
	format      string
	outputPath  string
	template    string
}

var rootCmd = NewRootCmd()

// NewRootCmd ...
func NewRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "fprim [flags] ELEMENT...",
		Short: "Prints anomalous scattering factors f' and f\".",
		Long: `Prints anomalous scattering factors f' and f" of each ELEMENT at the given
energies and wavelengths. All energies are reported first, followed by the
energies converted from wavelengths, each group in command-line order.
At least one ELEMENT is required; running without one is a usage error.

Without FPRIM_DATA_FILE the factors come from a built-in absorption edge
model covering H to Og; with it they are interpolated from that dataset and
energies outside its range are rejected.`,
		Example: `  fprim Fe -e 8000
  fprim Fe Zn -e 7000 -e 9000 -w 1.5418
  fprim Se -w 0.97949 --format json`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.Float64SliceVarP(&opts.energies, "energy", "e", nil, "Energy [eV], repeatable")
	flags.Float64SliceVarP(&opts.wavelengths, "wavelength", "w", nil, "Wavelength [A], repeatable")
	flags.StringVarP(
		&opts.format, "format", "f", string(report.FormatTSV),
		fmt.Sprintf("Report format: %s", report.FormatNames()),
	)
	flags.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&opts.template, "template", "", "Row template for --format=template, e.g. '{{ .Element }} {{ sig 5 .FPrime }}'")
	// 占用 version 以使用 -V，cobra 会复用该 flag 输出版本
	flags.BoolP("version", "V", false, "Print version and exit")

	cmd.AddCommand(newVersionCmd(), newWebServerCmd())
	return cmd
}

func runRoot(stdout io.Writer, args []string, opts rootOptions) error {
	if err := logging.InitLogger(); err != nil {
		return err
	}

	queryOpts := query.Options{Energies: opts.energies, Wavelengths: opts.wavelengths}
	if err := queryOpts.Validate(); err != nil {
		return err
	}
	if len(args) == 0 {
		return &query.UsageError{Reason: "no element specified"}
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if format == report.FormatXLSX && opts.outputPath == "" {
		return &query.UsageError{Reason: "xlsx format requires --output"}
	}

	provider, err := storage.ScatteringProvider()
	if err != nil {
		return err
	}

	run := func(w io.Writer) error {
		writer, err := report.New(format, w, report.Options{Template: opts.template})
		if err != nil {
			return err
		}
		if err = query.New(element.PeriodicTable{}, provider, writer).Run(args, queryOpts); err != nil {
			// 输出到临时文件时释放 writer 资源，内容随临时文件一起丢弃
			if opts.outputPath != "" {
				_ = writer.Close()
			}
			return err
		}
		return writer.Close()
	}
	if opts.outputPath == "" {
		return run(stdout)
	}
	return writeFile(opts.outputPath, run)
}

// 先写入同目录下的临时文件，成功后重命名为目标文件，失败时目标文件保持不变
func writeFile(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "failed to write output file %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to write output file %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to write output file %s", path)
	}
	return nil
}

// 错误统一输出到 stderr，终端下显示为红色
func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %s\n", err)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(errcode.ExitFailure)
	}
}
