// Copyright 2015 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gologger is a compatibility layer between go-logging library and
// the context-bound logging of package logging.
//
// Usage:
//
//	ctx := gologger.StdConfig.Use(context.Background())
//	logging.Infof(ctx, "hello")
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/deepcheck/common/logging"
)

// StandardFormat first prints the level, time and filename, all colored.
// Then the message.
const StandardFormat = `%{color}[%{level:.1s}%{time:2006-01-02T15:04:05.000000Z07:00} ` +
	`%{pid} 0 %{shortfile}]%{color:reset} %{message}`

// PickyFormat is the same as StandardFormat, but without colors.
const PickyFormat = `[%{level:.1s}%{time:2006-01-02T15:04:05.000000Z07:00} ` +
	`%{pid} 0 %{shortfile}] %{message}`

// StdConfig is the LoggerConfig that writes to stderr using the standard
// format.
var StdConfig = LoggerConfig{Out: os.Stderr}

// LoggerConfig owns a go-logging Logger, configured in a way that is
// compatible with the logging package.
type LoggerConfig struct {
	// Format is the go-logging format string. If empty, StandardFormat is used.
	Format string
	// Out is the writer to emit log lines to.
	Out io.Writer
	// Level is the minimum go-logging level that the backend emits. The
	// context level is applied on top of this. Defaults to gol.DEBUG.
	Level gol.Level

	once sync.Once
	l    *gol.Logger
}

// NewLogger returns a new logging.Logger bound to ctx, using this config.
//
// ctx may be nil, in which case only the config level applies.
func (lc *LoggerConfig) NewLogger(ctx context.Context) logging.Logger {
	lc.once.Do(func() {
		lc.l = lc.newGoLogger()
	})
	return &loggerImpl{l: lc.l, ctx: ctx}
}

// Use registers a go-logging logger as the default logger of the supplied
// context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.SetFactory(ctx, func(ctx context.Context) logging.Logger {
		return lc.NewLogger(ctx)
	})
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}
	level := lc.Level
	if level == 0 {
		level = gol.DEBUG
	}

	backend := gol.NewBackendFormatter(
		gol.NewLogBackend(out, "", 0),
		gol.MustStringFormatter(format))
	leveled := gol.AddModuleLevel(backend)
	leveled.SetLevel(level, "")

	l := gol.MustGetLogger("")
	l.ExtraCalldepth = 2 // loggerImpl.LogCall + its caller in this package
	l.SetBackend(leveled)
	return l
}

type loggerImpl struct {
	l   *gol.Logger
	ctx context.Context
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(level logging.Level, calldepth int, format string, args []any) {
	if li.ctx != nil && !logging.IsLogging(li.ctx, level) {
		return
	}

	// The formatted message is passed through "%s" so that go-logging never
	// interprets it as a format string itself.
	msg := fmt.Sprintf(format, args...)
	if li.ctx != nil {
		if fields := logging.GetFields(li.ctx); len(fields) > 0 {
			msg = fmt.Sprintf("%-43s %s", msg, fields)
		}
	}

	switch level {
	case logging.Debug:
		li.l.Debugf("%s", msg)
	case logging.Info:
		li.l.Infof("%s", msg)
	case logging.Warning:
		li.l.Warningf("%s", msg)
	default:
		li.l.Errorf("%s", msg)
	}
}
