package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/fprim/pkg/element"
	"github.com/narasux/fprim/pkg/query"
	"github.com/narasux/fprim/pkg/report"
	"github.com/narasux/fprim/pkg/version"
)

func execute(args ...string) (string, error) {
	cmd := NewRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootSingleEnergy(t *testing.T) {
	out, err := execute("Fe", "-e", "8000")
	require.NoError(t, err)
	assert.Equal(t, report.TSVHeader+"Fe\t8000\t1.5498   \t-1.3705\t3.5291\n", out)
}

func TestRootLowEnergy(t *testing.T) {
	out, err := execute("Fe", "-e", "100", "-e", "200")
	require.NoError(t, err)
	// 每个能量独立计算，不会退化为某个参考能量处的值
	assert.Equal(t, report.TSVHeader+
		"Fe\t100\t123.984  \t-6.7801\t0.62232\n"+
		"Fe\t200\t61.9921  \t-7.2488\t0.19154\n", out)
}

func TestRootRepeatedFlags(t *testing.T) {
	out, err := execute("fe", "--wavelength=1", "-e", "100", "--energy=200")
	require.NoError(t, err)

	lines := bytes.Split([]byte(out), []byte("\n"))
	require.Len(t, lines, 5)
	assert.True(t, bytes.HasPrefix(lines[1], []byte("Fe\t100\t")))
	assert.True(t, bytes.HasPrefix(lines[2], []byte("Fe\t200\t")))
	assert.True(t, bytes.HasPrefix(lines[3], []byte("Fe\t12398.4\t1        \t")))
}

func TestRootMultipleElements(t *testing.T) {
	out, err := execute("Fe", "Zn", "-e", "8000")
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte(report.TSVHeader)))
	assert.Contains(t, out, report.TSVHeader+"Fe\t8000\t")
	assert.Contains(t, out, report.TSVHeader+"Zn\t8000\t")
}

func TestRootNoEnergy(t *testing.T) {
	out, err := execute("Fe")
	assert.Equal(t, query.ErrNoEnergy, err)
	assert.Empty(t, out)
}

func TestRootNoElement(t *testing.T) {
	_, err := execute("-e", "8000")
	assert.True(t, query.IsUsageError(err))
	assert.EqualError(t, err, "no element specified")
	assert.Contains(t, NewRootCmd().Long, "At least one ELEMENT is required")
}

func TestRootInvalidValue(t *testing.T) {
	_, err := execute("Fe", "-w", "0")
	assert.True(t, query.IsUsageError(err))

	_, err = execute("Fe", "-e", "abc")
	assert.Error(t, err)
}

func TestRootUnknownElement(t *testing.T) {
	out, err := execute("Xx", "Fe", "-e", "8000")
	assert.True(t, errors.Is(err, element.ErrUnknownElement))
	assert.Contains(t, err.Error(), "'Xx'")
	assert.Empty(t, out)
}

func TestRootIdempotent(t *testing.T) {
	first, err := execute("Fe", "Cu", "-e", "9000", "-w", "0.71073")
	require.NoError(t, err)
	second, err := execute("Fe", "Cu", "-e", "9000", "-w", "0.71073")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootFormats(t *testing.T) {
	out, err := execute("Fe", "-e", "8000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "element,atomic_number,energy_ev,wavelength_a,fp,fpp\nFe,26,8000,")

	_, err = execute("Fe", "-e", "8000", "--format", "yaml")
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))

	_, err = execute("Fe", "-e", "8000", "--format", "xlsx")
	assert.True(t, query.IsUsageError(err))
}

func TestRootOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fprim.json")
	require.NoError(t, os.WriteFile(path, []byte("previous report"), 0o600))

	out, err := execute("Zn", "-e", "8000", "-f", "json", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "Zn"`)
	assert.NotContains(t, string(content), "previous report")

	_, err = execute("Zn", "-e", "8000", "-o", filepath.Join(t.TempDir(), "not-exists", "fprim.tsv"))
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestRootOutputFileKeptOnError(t *testing.T) {
	cases := []struct {
		format string
		args   []string
	}{
		{"json", []string{"Xx", "-e", "8000"}},
		{"xlsx", []string{"Fe", "Xx", "-e", "8000"}},
		{"tsv", []string{"Fe", "Zn", "Xx", "-w", "1.5"}},
	}
	for _, c := range cases {
		dir := t.TempDir()
		path := filepath.Join(dir, "fprim."+c.format)
		require.NoError(t, os.WriteFile(path, []byte("previous report"), 0o644))

		args := append(c.args, "-f", c.format, "-o", path)
		_, err := execute(args...)
		assert.True(t, errors.Is(err, element.ErrUnknownElement), c.format)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "previous report", string(content), c.format)

		// 临时文件已清理
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, c.format)
	}
}

func TestRootEveryElement(t *testing.T) {
	out, err := execute("H", "D", "Au", "U", "Og", "-e", "8000")
	require.NoError(t, err)
	assert.Equal(t, 5, bytes.Count([]byte(out), []byte(report.TSVHeader)))
	assert.Contains(t, out, "Au\t8000\t1.5498   \t-5.8612\t6.5601\n")
	assert.Contains(t, out, "Og\t8000\t1.5498   \t-35.661\t4.4484\n")
}

func TestRootSubcommands(t *testing.T) {
	names := []string{}
	for _, sub := range NewRootCmd().Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"version", "webserver"}, names)

	out, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)

	// 包级 rootCmd 同样以位置参数作为元素名
	stdout := &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"Fe", "Zn", "-e", "8000"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 2, bytes.Count(stdout.Bytes(), []byte(report.TSVHeader)))
	assert.Contains(t, stdout.String(), "Fe\t8000\t1.5498   \t-1.3705\t3.5291\n")
}

func TestRootVersion(t *testing.T) {
	out, err := execute("-V")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}

func TestPrintError(t *testing.T) {
	buf := &bytes.Buffer{}
	printError(buf, &element.UnknownElementError{Name: "Xx"})
	assert.Contains(t, buf.String(), "Error: element name not recognized: 'Xx'")
}
