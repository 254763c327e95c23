// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	// standard libraries.
	"context"
	"io"
	"os"
	"strings"
	"time"

	// third-party libraries.
	"github.com/sirupsen/logrus"
)

const levelEnv = "TREVNI_LOG_LEVEL"

type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warning(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
	SetLevel(level string)
	SetLogWriter(writer io.Writer)
}

func init() {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	logger.Out = os.Stderr
	r := &defaultLogger{
		logger: logger,
	}
	level := os.Getenv(levelEnv)
	r.SetLevel(level)
	vLog = r
	vLog.Debug(context.Background(), "logger level has been set", map[string]interface{}{
		"log_level": level,
	})
}

var vLog Logger

type defaultLogger struct {
	logger *logrus.Logger
}

// Make sure defaultLogger implements Logger.
var _ Logger = (*defaultLogger)(nil)

func (l *defaultLogger) entry(ctx context.Context, fields map[string]interface{}) *logrus.Entry {
	e := l.logger.WithFields(fields)
	if ctx != nil {
		e = e.WithContext(ctx)
	}
	return e
}

func (l *defaultLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.entry(ctx, fields).Debug(msg)
}

func (l *defaultLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.entry(ctx, fields).Info(msg)
}

func (l *defaultLogger) Warning(ctx context.Context, msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.entry(ctx, fields).Warning(msg)
}

func (l *defaultLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.entry(ctx, fields).Error(msg)
}

func (l *defaultLogger) SetLevel(level string) {
	l.logger.SetLevel(parseLevel(level))
}

func (l *defaultLogger) SetLogWriter(writer io.Writer) {
	l.logger.Out = writer
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLogger replaces the package logger, e.g. to route logs into an embedding application.
func SetLogger(logger Logger) {
	vLog = logger
}

func SetLogLevel(level string) {
	if level == "" {
		return
	}
	vLog.SetLevel(level)
}

func SetLogWriter(writer io.Writer) {
	if writer == nil {
		return
	}
	vLog.SetLogWriter(writer)
}

func Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	vLog.Debug(ctx, msg, fields)
}

func Info(ctx context.Context, msg string, fields map[string]interface{}) {
	vLog.Info(ctx, msg, fields)
}

func Warning(ctx context.Context, msg string, fields map[string]interface{}) {
	vLog.Warning(ctx, msg, fields)
}

func Error(ctx context.Context, msg string, fields map[string]interface{}) {
	vLog.Error(ctx, msg, fields)
}
