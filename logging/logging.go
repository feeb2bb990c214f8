/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logging builds zap loggers from apis.LogConfig.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"dirpx.dev/mfx/apis"
)

const (
	// DefaultMaxSizeMB is the rotation threshold used when LogConfig.MaxSizeMB is zero.
	DefaultMaxSizeMB = 10
	// DefaultMaxBackups is used when LogConfig.MaxBackups is zero.
	DefaultMaxBackups = 5
	// DefaultMaxAgeDays is used when LogConfig.MaxAgeDays is zero.
	DefaultMaxAgeDays = 7
)

// New builds a logger writing to stderr and, when cfg.File is set, to a
// rotated JSON file.
func New(cfg apis.LogConfig) (*zap.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is like New but writes console output to w.
func NewWithWriter(cfg apis.LogConfig, w io.Writer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("mfx(logging): %w", err)
		}
		level = l
	}

	var consoleEncoder zapcore.Encoder
	if cfg.Development {
		// Human-readable format for development.
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(ec)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(w), level),
	}

	if cfg.File != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: orDefault(cfg.MaxBackups, DefaultMaxBackups),
			MaxAge:     orDefault(cfg.MaxAgeDays, DefaultMaxAgeDays),
			Compress:   true,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, sink, level))
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.Development {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
