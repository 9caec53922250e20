// Copyright (C) 2025 OnboardSec
//
// This file is part of AzGrant.
//
// AzGrant is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AzGrant is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger exposes a logr.Logger backed by zerolog. Verbosity maps
// logr V-levels onto zerolog levels: 0 info, 1 debug, 2+ trace.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"

	"github.com/onboardsec/azgrant/config"
)

// GetLogger builds the application logger from the current configuration.
func GetLogger() (*logr.Logger, error) {
	var writers []io.Writer

	if jsonLogs, ok := config.JsonLogs.Value().(bool); ok && jsonLogs {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if path, ok := config.LogFile.Value().(string); ok && path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
		}
		writers = append(writers, file)
	}

	verbosity := 0
	if level, ok := config.VerbosityLevel.Value().(int); ok {
		verbosity = level
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	logger := logr.New(&zerologSink{logger: &zl, verbosity: verbosity})
	return &logger, nil
}

type zerologSink struct {
	logger    *zerolog.Logger
	verbosity int
	name      string
	values    []interface{}
}

func (s *zerologSink) Init(info logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return level <= s.verbosity
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	var event *zerolog.Event
	switch {
	case level <= 0:
		event = s.logger.Info()
	case level == 1:
		event = s.logger.Debug()
	default:
		event = s.logger.Trace()
	}
	s.write(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	sink := *s
	sink.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &sink
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	sink := *s
	if sink.name != "" {
		sink.name = sink.name + "." + name
	} else {
		sink.name = name
	}
	return &sink
}

func (s *zerologSink) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event = fields(event, s.values)
	event = fields(event, keysAndValues)
	event.Msg(msg)
}

// fields appends key/value pairs to the event; a trailing key without a
// value is recorded as such rather than dropped.
func fields(event *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			event = event.Interface(key, keysAndValues[i+1])
		} else {
			event = event.Str(key, "<no value>")
		}
	}
	return event
}
