// Copyright 2025 walteh LLC
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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	stageIndent = 4  // spaces to indent stage entries
	nameWidth   = 22 // Base width for stage name
	statusWidth = 14 // Width for status text
)

// 🎯 StageOperation represents one stage outcome for logging
type StageOperation struct {
	Stage        string  // Stage name
	Status       string  // applied / declined / rolled_back / failed
	Similarity   float64 // Gate similarity score, 0 when ungated
	Replacements int     // Number of edits made
}

// 📦 RunOperation represents one pipeline run for logging
type RunOperation struct {
	RunID     string // Pipeline run identifier
	Formality string // Formality register in effect
	Intensity float64
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []StageOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatStageOperation formats a stage outcome for display
func (l *Logger) formatStageOperation(op StageOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case "applied":
		symbol = '✓'
		symbolColor = color.FgGreen
	case "rolled_back":
		symbol = '⟲'
		symbolColor = color.FgYellow
	case "failed":
		symbol = '✗'
		symbolColor = color.FgRed
	default: // declined
		symbol = '-'
		symbolColor = color.FgCyan
	}

	detail := ""
	if op.Similarity > 0 {
		detail = fmt.Sprintf("sim %.2f", op.Similarity)
	}
	if op.Replacements > 0 {
		if detail != "" {
			detail += ", "
		}
		detail += fmt.Sprintf("%d edits", op.Replacements)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", stageIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Stage),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		color.New(color.Faint).Sprint(detail))
}

// 📝 LogStageOperation logs one stage outcome
func (l *Logger) LogStageOperation(ctx context.Context, op StageOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)
	fmt.Fprintln(l.console, l.formatStageOperation(op))

	l.zlog.Info().
		Str("stage", op.Stage).
		Str("status", op.Status).
		Float64("similarity", op.Similarity).
		Int("replacements", op.Replacements).
		Msg("stage operation")
}

// 📝 StartRun starts a new pipeline run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.RunID),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%s / %.1f", op.Formality, op.Intensity))

	l.zlog.Info().
		Str("run_id", op.RunID).
		Str("formality", op.Formality).
		Float64("intensity", op.Intensity).
		Msg("starting pipeline run")
}

// 📝 EndRun ends the current pipeline run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	l.zlog.Info().
		Str("run_id", l.currentRun.RunID).
		Int("stages", len(l.operations)).
		Msg("pipeline run complete")

	l.currentRun = nil
	l.operations = nil
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	brand := color.New(color.Bold, color.FgCyan).Sprint("rephrase")
	fmt.Fprintf(l.console, "\n%s %s\n\n", brand, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
