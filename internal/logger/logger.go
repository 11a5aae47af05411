package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sqve/ticketguard/internal/config"
	"github.com/sqve/ticketguard/internal/styles"
)

var output io.Writer = os.Stderr

// SetOutput redirects all diagnostics to w. A nil w restores os.Stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

func isPlain() bool {
	return config.IsPlain()
}

// Debug prints debug information when debug mode is enabled
func Debug(format string, args ...any) {
	if config.IsDebug() {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// GitCommand logs a git invocation at debug level
func GitCommand(args []string) {
	Debug("Executing: git %s", strings.Join(args, " "))
}

// GitResult logs the outcome of a git invocation at debug level
func GitResult(success bool, out string) {
	status := "ok"
	if !success {
		status = "failed"
	}
	Debug("git %s: %s", status, strings.TrimSpace(out))
}

// Info prints informational messages to the diagnostic output
func Info(format string, args ...any) {
	fmt.Fprintf(output, "%s"+format+"\n", append([]any{styles.Symbol(&styles.Info, "→")}, args...)...)
}

// Success prints success messages to the diagnostic output
func Success(format string, args ...any) {
	fmt.Fprintf(output, "%s"+format+"\n", append([]any{styles.Symbol(&styles.Success, "✓")}, args...)...)
}

// Warning prints warnings to the diagnostic output
func Warning(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(output, "Warning: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(output, "%s"+format+"\n", append([]any{styles.Symbol(&styles.Warning, "⚠")}, args...)...)
}

// Error prints error messages to the diagnostic output
func Error(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(output, "Error: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(output, "%s"+format+"\n", append([]any{styles.Symbol(&styles.Error, "✗")}, args...)...)
}
