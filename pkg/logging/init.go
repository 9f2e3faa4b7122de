package logging

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/narasux/fprim/pkg/envs"
)

var initOnce sync.Once

// 访问日志（仅 webserver 使用）
var accessLogger *logrus.Logger

// web 接口日志（Handler...)
var webLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeWeb    = "web"
)

// InitLogger 初始化日志，报告输出到 stdout，因此日志只能写 stderr（及可选的文件）
func InitLogger() error {
	if err := initSystemLogger(); err != nil {
		return err
	}

	var err error
	initOnce.Do(func() {
		if accessLogger, err = newJsonLogger(LogTypeAccess); err != nil {
			return
		}
		webLogger, err = newJsonLogger(LogTypeWeb)
	})
	return err
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetWebLogger() *logrus.Logger {
	if webLogger == nil {
		return GetSystemLogger()
	}
	return webLogger
}

func initSystemLogger() error {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		return errors.Wrap(err, "failed to init system logger")
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	logrus.SetLevel(parseLevel(envs.LogLevel))
	return nil
}

func newJsonLogger(logType string) (*logrus.Logger, error) {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init %s logger", logType)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	logger.SetLevel(parseLevel(envs.LogLevel))
	return logger, nil
}

// 解析日志级别，非法值回退到 warn
func parseLevel(value string) logrus.Level {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
