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

// Package logging defines a context-bound logging facade.
//
// Loggers are installed into a context.Context with SetFactory (or a backend
// helper like gologger.Use) and retrieved with Get. Packages that want to log
// simply call logging.Debugf(ctx, ...) and friends; if no logger was installed
// the messages are discarded.
package logging

import (
	"context"
	"flag"
	"fmt"
)

// Logger is a logging interface. Messages at a Level lower than the one
// configured in the context are dropped by the implementation.
type Logger interface {
	// Debugf logs a formatted message at Debug level.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at Info level.
	Infof(format string, args ...any)
	// Warningf logs a formatted message at Warning level.
	Warningf(format string, args ...any)
	// Errorf logs a formatted message at Error level.
	Errorf(format string, args ...any)

	// LogCall is a generic logging function. This is oriented more towards
	// utility functions than direct end-user usage.
	//
	// calldepth is the number of stack frames between the user's call site and
	// LogCall.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory is a function that returns a Logger instance bound to the specified
// context.
type Factory func(context.Context) Logger

// Level is an enumeration consisting of supported log levels.
type Level int

// Level implements flag.Value.
var _ flag.Value = (*Level)(nil)

// Defined log levels.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// DefaultLevel is the default Level value.
const DefaultLevel = Info

// Set implements flag.Value.
func (l *Level) Set(v string) error {
	switch v {
	case "debug":
		*l = Debug
	case "info":
		*l = Info
	case "warning":
		*l = Warning
	case "error":
		*l = Error
	default:
		return fmt.Errorf("unknown log level %q", v)
	}
	return nil
}

// String implements flag.Value.
func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

type key int

const (
	factoryKey key = iota
	levelKey
	fieldsKey
)

// SetFactory sets the Logger factory for this context.
//
// The factory will be called each time Get(context) is used.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the currently-configured logging factory (or nil).
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get the current Logger, or a logger that ignores all messages if none
// is defined.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		return f(ctx)
	}
	return Null
}

// SetLevel sets the Level for this context.
//
// It can be retrieved with GetLevel(context).
func SetLevel(ctx context.Context, l Level) context.Context {
	return context.WithValue(ctx, levelKey, l)
}

// GetLevel returns the Level for this context. It will return DefaultLevel if
// none is defined.
func GetLevel(ctx context.Context) Level {
	if l, ok := ctx.Value(levelKey).(Level); ok {
		return l
	}
	return DefaultLevel
}

// IsLogging tests whether the context is configured to log at the specified
// level.
//
// Individual Logger implementations are supposed to call this function when
// deciding whether to log the message.
func IsLogging(ctx context.Context, l Level) bool {
	return l >= GetLevel(ctx)
}
