// Copyright 2025 go-numeric Authors
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

// Package logging holds the logrus logger shared by the commands. The
// library packages never log.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init replaces the logger with one writing to w at the given level. An
// unknown level falls back to info and is reported as an error.
func Init(level string, w io.Writer) error {
	log = logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if w == nil {
		w = os.Stderr
	}
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// Get returns the logger instance.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

func Debugf(format string, args ...interface{}) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Get().Warnf(format, args...)
}

// WithFields returns an entry carrying fields, e.g. the dispatch level.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}
