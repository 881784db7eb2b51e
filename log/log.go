// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

// Package log provides the leveled logger every other package writes
// through: a package-level root logger with logrus underneath, and an
// optional rotating file sink for long traces.
package log

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Lvl mirrors logrus's level ordering but keeps the teacher's own enum
// so call sites never import logrus directly.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) logrusLevel() logrus.Level {
	switch l {
	case LvlCrit:
		return logrus.FatalLevel
	case LvlError:
		return logrus.ErrorLevel
	case LvlWarn:
		return logrus.WarnLevel
	case LvlInfo:
		return logrus.InfoLevel
	case LvlDebug:
		return logrus.DebugLevel
	case LvlTrace:
		return logrus.TraceLevel
	}
	return logrus.InfoLevel
}

// Logger writes key/value pairs at a given level, following the
// teacher's Logger interface shape (log/root.go).
type Logger interface {
	New(ctx ...interface{}) Logger
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	entry *logrus.Entry
}

var base = logrus.New()

func init() {
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func fields(ctx []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		key := fmt.Sprintf("%v", ctx[i])
		f[key] = ctx[i+1]
	}
	return f
}

// New returns a child Logger carrying ctx as structured fields.
func New(ctx ...interface{}) Logger {
	return &logger{entry: base.WithFields(fields(ctx))}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{entry: l.entry.WithFields(fields(ctx))}
}

func (l *logger) Trace(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Trace(msg)
}
func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Debug(msg)
}
func (l *logger) Info(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Info(msg)
}
func (l *logger) Warn(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Warn(msg)
}
func (l *logger) Error(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Error(msg)
}
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.entry.WithFields(fields(ctx)).Fatal(msg)
}

var root = New()

// Trace/Debug/Info/Warn/Error/Crit are package-level aliases for
// Root().<Level>, matching the teacher's convenience-function set.
func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }

// Root returns the package-level root logger.
func Root() Logger { return root }

// FileConfig configures the optional rotating file sink, built on
// lumberjack the same way the teacher wires its trace-log rotation.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Level      Lvl
}

// InitFile redirects the root logger's output to a size- and
// age-rotated file. Call once at process startup.
func InitFile(cfg FileConfig) {
	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	base.SetOutput(lj)
	base.SetLevel(cfg.Level.logrusLevel())
}

// SetLevel adjusts the root logger's minimum level.
func SetLevel(lvl Lvl) {
	base.SetLevel(lvl.logrusLevel())
}
