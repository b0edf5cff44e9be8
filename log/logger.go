package log

import (
	"errors"
	"time"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/Mangofish369/CSC148-Labs/collections"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	Error(err error)
	Fatal(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger
	WithError(err error) Logger

	// Sync flushes any buffered log entries.
	Sync() error

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

// errorFields returns the error's stackerr fields as alternating keys and
// values, sorted by key.
func errorFields(err error) []any {
	var serr stackerr.Error
	if !errors.As(err, &serr) {
		return nil
	}
	fields := serr.Fields()
	kvp := make([]any, 0, 2*len(fields))
	for _, k := range collections.SortedStringKeys(fields) {
		kvp = append(kvp, k, fields[k])
	}
	return kvp
}

// Error will add the error fields as log fields and log the
// error message at the Error level. A nil error is ignored.
func (l logger) Error(err error) {
	if err == nil {
		return
	}
	l.WithOptions(zap.AddCallerSkip(1)).(logger).Errorw(err.Error(), errorFields(err)...)
}

// Fatal will add the error fields as log fields and log the
// error message at the Fatal level. A nil error is ignored.
func (l logger) Fatal(err error) {
	if err == nil {
		return
	}
	l.WithOptions(zap.AddCallerSkip(1)).(logger).Fatalw(err.Error(), errorFields(err)...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone()}
}

// WithError will return a new logger with the error under the "error" key
// and the error's stackerr fields, if any, as additional fields.
func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	args := append([]any{zap.Error(err)}, errorFields(err)...)
	return l.With(args...)
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	InitialFields map[string]any
	SkippedFrames int

	// Output overrides the default stdout sink.
	Output zapcore.WriteSyncer
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		InitialFields: collections.CopyMap(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
		Output:        ni.Output,
	}
}

func New(input NewInput) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder

	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	sink := input.Output
	if sink == nil {
		out, _, err := zap.Open("stdout")
		if err != nil {
			panic(err)
		}
		sink = out
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	} else {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		}))
	}

	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		fs := make([]zap.Field, 0, len(input.InitialFields))
		for _, k := range collections.SortedStringKeys(input.InitialFields) {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level))
	zapLogger := zap.New(core, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return logger{zapLogger.Sugar(), input}
}
