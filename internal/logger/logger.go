package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type palette struct {
	Reset  string
	Red    string
	Green  string
	Yellow string
	Blue   string
	Purple string
	Cyan   string
	Gray   string
	Bold   string
}

var (
	ansi = palette{
		Reset:  "\033[0m",
		Red:    "\033[31m",
		Green:  "\033[32m",
		Yellow: "\033[33m",
		Blue:   "\033[34m",
		Purple: "\033[35m",
		Cyan:   "\033[36m",
		Gray:   "\033[37m",
		Bold:   "\033[1m",
	}

	plain = palette{}

	// exactly three digits between 200 and 599
	statusCodeRegex = regexp.MustCompile(`^[2-5]\d{2}$`)
)

// Init configures the global logger for env. Colours are only used on a terminal.
func Init(env string) {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	log.Logger = zerolog.New(NewConsoleWriter(os.Stdout, color)).
		With().
		Timestamp().
		Str("env", env).
		Logger()

	switch env {
	case "local", "development":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// NewConsoleWriter returns the human readable writer used by Init.
func NewConsoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	scheme := plain
	if color {
		scheme = ansi
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "02.01.2006 15:04:05",
		NoColor:    !color,
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "INFO":
				return fmt.Sprintf("%s●%s", scheme.Blue, scheme.Reset)
			case "WARN":
				return fmt.Sprintf("%s●%s", scheme.Yellow, scheme.Reset)
			case "ERROR":
				return fmt.Sprintf("%s●%s", scheme.Red, scheme.Reset)
			default:
				return level
			}
		},
		FormatMessage: func(i interface{}) string {
			msg := fmt.Sprintf("%-35s", i)

			switch {
			case strings.HasPrefix(msg, "Request completed"):
				return fmt.Sprintf("%s%s%s", scheme.Gray, msg, scheme.Reset)
			case strings.HasPrefix(msg, "Request started"):
				return fmt.Sprintf("%s%s%s", scheme.Bold, msg, scheme.Reset)
			case strings.HasPrefix(msg, "Upload successful"):
				return fmt.Sprintf("%s%s%s", scheme.Green, msg, scheme.Reset)
			case strings.HasPrefix(msg, "Error uploading file"), strings.HasPrefix(msg, "No file selected"):
				return fmt.Sprintf("%s%s%s", scheme.Bold, msg, scheme.Reset)
			}

			return msg
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s%s%s=", scheme.Cyan, i, scheme.Reset)
		},
		FormatFieldValue: func(i interface{}) string {
			return formatFieldValue(scheme, fmt.Sprintf("%s", i))
		},
	}
}

func formatFieldValue(scheme palette, val string) string {
	switch val {
	case "GET", "POST", "PUT", "DELETE", "PATCH":
		return fmt.Sprintf("%s%s%s", scheme.Purple, val, scheme.Reset)
	}

	if statusCodeRegex.MatchString(val) {
		switch val[0] {
		case '2':
			return fmt.Sprintf("%s%s%s", scheme.Green, val, scheme.Reset)
		case '3':
			return fmt.Sprintf("%s%s%s", scheme.Yellow, val, scheme.Reset)
		case '4', '5':
			return fmt.Sprintf("%s%s%s", scheme.Red, val, scheme.Reset)
		}
	}

	return val
}
