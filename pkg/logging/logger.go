package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/fprim/pkg/envs"
)

// 获取日志 Writer，配置了日志目录时返回双写 Writer（stderr & file）
func getWriter(logType string) (io.Writer, error) {
	stderrWriter := getOSWriter()
	if envs.LogFileBaseDir == "" {
		return stderrWriter, nil
	}
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(stderrWriter, fileWriter), nil
}

func getOSWriter() io.Writer {
	return os.Stderr
}

func getFileWriter(logType string) (io.Writer, error) {
	// 不同的日志类型分目录存储
	path := filepath.Join(envs.LogFileBaseDir, logType)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
	}
	filename := logType + ".log"

	// 使用 lumberjack 实现日志切割归档
	writer := &lumberjack.Logger{
		Filename: filepath.Join(path, filename),
		// megabytes
		MaxSize:    32,
		MaxBackups: 5,
		// days
		MaxAge:    14,
		LocalTime: true,
	}
	return writer, nil
}
