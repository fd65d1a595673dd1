// Package logging builds the zap logger for the display loop.
//
// The terminal is owned by the display, so nothing is ever written to stdout or
// stderr: debug runs log JSON lines to a rotating file, other runs discard.
package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/the-sequence/constants"
)

// Options selects the log sink
type Options struct {
	Debug bool
	File  string
}

// Logger bundles the zap logger with its sink so callers can flush and close
type Logger struct {
	*zap.Logger
	RunID string
	sink  *lumberjack.Logger
}

// New returns a discarding logger unless Debug is set
func New(opts Options) (*Logger, error) {
	runID := uuid.NewString()

	if !opts.Debug {
		return &Logger{Logger: zap.NewNop(), RunID: runID}, nil
	}

	file := opts.File
	if file == "" {
		file = constants.DefaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(sink),
		zapcore.DebugLevel,
	)
	l := zap.New(core).With(zap.String("run_id", runID))

	return &Logger{Logger: l, RunID: runID, sink: sink}, nil
}

// Close flushes buffered entries and releases the file
func (l *Logger) Close() error {
	// Sync on a nop or file core never fails in a way callers can act on
	_ = l.Logger.Sync()
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}
