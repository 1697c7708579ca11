/*
Copyright 2024 Stefan Prodan

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"k8s.io/klog/v2"
	runtimeLog "sigs.k8s.io/controller-runtime/pkg/log"
)

// Options configures the console logger.
type Options struct {
	// Colorize adds colors to the log output.
	Colorize bool

	// Prettify adds timestamps and log levels to the log output.
	Prettify bool

	// Debug enables the V(1) messages.
	Debug bool

	// Out defaults to the colorable stderr.
	Out io.Writer
}

// NewConsoleLogger returns a human-friendly Logger.
// Pretty print adds timestamp, log level and colorized output to the logs.
func NewConsoleLogger(opts Options) logr.Logger {
	color.NoColor = !opts.Colorize
	out := opts.Out
	if out == nil {
		out = color.Error
	}

	zconfig := zerolog.ConsoleWriter{Out: out, NoColor: !opts.Colorize}
	if !opts.Prettify {
		zconfig.PartsExclude = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zconfig).Level(level).With().Timestamp().Logger()

	// Create a logr.Logger using zerolog as sink.
	zerologr.VerbosityFieldName = ""
	log := zerologr.New(&zlog)

	// Set controller-runtime and client-go loggers.
	runtimeLog.SetLogger(log)
	klog.SetLogger(log)

	return log
}

var (
	colorCallerPrefix = color.New(color.FgHiBlack)
	colorType         = color.New(color.FgHiBlue)
	colorPath         = color.New(color.FgHiGreen)
)

func ColorizeWarning(subject string) string {
	return color.YellowString(subject)
}

func ColorizePath(path string) string {
	return colorPath.Sprint(path)
}

func ColorizeType(typeName string) string {
	return colorCallerPrefix.Sprint("t:") + colorType.Sprint(typeName)
}

// StartSpinner starts a spinner with the given message.
func StartSpinner(msg string) interface{ Stop() } {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()
	return s
}
