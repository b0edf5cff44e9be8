package log

import (
	"sync"

	"github.com/Mangofish369/CSC148-Labs/collections"
	"go.uber.org/zap/zapcore"
)

var defaultLogger Logger
var defaultLoggerLock sync.Mutex

var Infow func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})
var Error func(err error)
var With func(args ...interface{}) Logger

func init() {
	InitDefault(NewInput{
		Level: zapcore.InfoLevel,
	})
}

// Default returns the current global default logger.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. This function
// IS NOT thread-safe and cannot be used while other routines
// are using the existing global default logger.
func InitDefault(input NewInput) {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	defaultLogger = New(input)

	Infow = defaultLogger.Infow
	Errorw = defaultLogger.Errorw
	Error = defaultLogger.Error
	With = defaultLogger.With
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) {
	input := Default().Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	InitDefault(input)
}
