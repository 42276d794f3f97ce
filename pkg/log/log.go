/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package log

import (
	"errors"
	"io"
	stdlog "log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogName    = "go-esl"
	HelpLevels = "Must be one of: error, warning, info, debug."
)

// Rotate describes an optional log file. Empty Filename disables file output.
type Rotate struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Logger struct {
	level zap.AtomicLevel
	*zap.SugaredLogger
}

var logger = newLogger(os.Stderr, zap.NewAtomicLevelAt(zapcore.InfoLevel), nil)

// ParseLevel maps a level name to a zap level
func ParseLevel(strLevel string) (zapcore.Level, error) {
	levelMapping := map[string]zapcore.Level{
		"error":   zapcore.ErrorLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"info":    zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
	}
	level, ok := levelMapping[strings.ToLower(strLevel)]
	if !ok {
		return zapcore.InfoLevel, errors.New("Wrong log level. " + HelpLevels)
	}
	return level, nil
}

func newLogger(out io.Writer, level zap.AtomicLevel, rotate *Rotate) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	ws := zapcore.AddSync(out)
	if rotate != nil && rotate.Filename != "" {
		lj := &lumberjack.Logger{
			Filename:   rotate.Filename,
			MaxSize:    rotate.MaxSizeMB,
			MaxBackups: rotate.MaxBackups,
			MaxAge:     rotate.MaxAgeDays,
			Compress:   rotate.Compress,
		}
		ws = zapcore.NewMultiWriteSyncer(ws, zapcore.AddSync(lj))
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, level)
	return &Logger{
		level:         level,
		SugaredLogger: zap.New(core, zap.AddCallerSkip(1)).Named(LogName).Sugar(),
	}
}

func SetLevel(strLevel string) error {
	level, err := ParseLevel(strLevel)
	if err != nil {
		return err
	}
	logger.level.SetLevel(level)
	return nil
}

// Init replaces the global logger. It panics on a wrong level the same way
// the command line would have rejected it.
func Init(out io.Writer, strLevel string, rotate *Rotate) {
	level, err := ParseLevel(strLevel)
	if err != nil {
		panic(err)
	}
	logger = newLogger(out, zap.NewAtomicLevelAt(level), rotate)
}

// StdLogger adapts the global logger for libraries that want *log.Logger.
func StdLogger() *stdlog.Logger {
	return zap.NewStdLog(logger.Desugar())
}

func Sync() {
	_ = logger.Sync()
}

func Error(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

func Warning(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func Info(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func Debug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}
