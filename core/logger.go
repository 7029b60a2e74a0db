/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

var shouldPrintTraceLogs = false
var logLevel log.Level

// InitializeLogger initializes the logger, writing to standard output.
func InitializeLogger() {
	InitializeLoggerTo(os.Stdout)
}

// InitializeLoggerTo initializes the logger with a text handler writing to w.
// The level is read from core.log_level.
func InitializeLoggerTo(w io.Writer) {
	log.SetHandler(text.New(w))

	logLevelString := GetConfigStringDefault("core.log_level", "INFO")

	var err error
	shouldPrintTraceLogs = false
	logLevel, err = log.ParseLevel(strings.ToLower(logLevelString))
	if err == nil {
		log.SetLevel(logLevel)
	} else if logLevelString == "TRACE" {
		// Apex has no TRACE level: run at DEBUG and gate trace messages ourselves.
		logLevel = log.DebugLevel
		log.SetLevel(log.DebugLevel)
		shouldPrintTraceLogs = true
	} else {
		logLevel = log.InfoLevel
		log.SetLevel(log.InfoLevel)
	}
}

func generateLogMessage(components ...interface{}) string {
	var message strings.Builder
	for _, component := range components {
		switch v := component.(type) {
		case string:
			message.WriteString(v)
		case int:
			message.WriteString(strconv.Itoa(v))
		case int64:
			message.WriteString(strconv.FormatInt(v, 10))
		case uint64:
			message.WriteString(strconv.FormatUint(v, 10))
		case bool:
			message.WriteString(strconv.FormatBool(v))
		case error:
			message.WriteString(v.Error())
		default:
			message.WriteString(fmt.Sprintf("%v", component))
		}
	}
	return message.String()
}

func entry(module interface{}) *log.Entry {
	return log.WithField("module", fmt.Sprintf("%v", module))
}

// LogFatal logs a message at the FATAL level. The process exits afterwards.
func LogFatal(module interface{}, components ...interface{}) {
	if logLevel <= log.FatalLevel {
		entry(module).Fatal(generateLogMessage(components...))
	}
}

// LogError logs a message at the ERROR level.
func LogError(module interface{}, components ...interface{}) {
	if logLevel <= log.ErrorLevel {
		entry(module).Error(generateLogMessage(components...))
	}
}

// LogWarn logs a message at the WARN level.
func LogWarn(module interface{}, components ...interface{}) {
	if logLevel <= log.WarnLevel {
		entry(module).Warn(generateLogMessage(components...))
	}
}

// LogInfo logs a message at the INFO level.
func LogInfo(module interface{}, components ...interface{}) {
	if logLevel <= log.InfoLevel {
		entry(module).Info(generateLogMessage(components...))
	}
}

// LogDebug logs a message at the DEBUG level.
func LogDebug(module interface{}, components ...interface{}) {
	if logLevel <= log.DebugLevel {
		entry(module).Debug(generateLogMessage(components...))
	}
}

// LogTrace logs a message at the TRACE level (really just additional DEBUG messages).
func LogTrace(module interface{}, components ...interface{}) {
	if shouldPrintTraceLogs {
		entry(module).Debug(generateLogMessage(components...))
	}
}
