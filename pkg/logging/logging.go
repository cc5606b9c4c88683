// Package logging builds the zap logger shared by the command line and the
// widgets it mounts.
//
// JSON lines go to a lumberjack-rotated file when a log file is configured.
// When stderr is a terminal the same events are teed, colourised unless
// NO_COLOR is set, to it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the part of the application config logging reads.
type Config interface {
	LogFile() string
	LogLevel() string
}

// Options adjust New.
type Options struct {
	// Console overrides the console sink; defaults to stderr when it is a
	// terminal.
	Console io.Writer
	// Quiet drops the console core.
	Quiet bool
}

// New returns a logger for cfg. With neither a file nor a terminal it
// returns a no-op logger.
func New(cfg Config, o Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel(), err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	var opts []zap.Option

	if path := cfg.LogFile(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level))
		opts = append(opts, zap.ErrorOutput(fileSink))
	}

	if console := consoleWriter(o); console != nil {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.LowercaseColorLevelEncoder
		if termenv.EnvNoColor() {
			consoleCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		}
		consoleCfg.TimeKey = ""
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), opts...).Named("uikit"), nil
}

func consoleWriter(o Options) io.Writer {
	if o.Quiet {
		return nil
	}
	if o.Console != nil {
		return o.Console
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return os.Stderr
	}
	return nil
}
