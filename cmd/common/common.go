/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Log levels per module plus an optional default, " +
		"formatted as module1=level1:module2=level2:defaultLevel. " +
		"Levels: CRITICAL, ERROR, WARNING, INFO, DEBUG. " +
		"Example: issuance=DEBUG:token-service=WARNING:INFO. Defaults to INFO. " +
		"Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey
)

// SetDefaultLogLevel applies a log spec such as "issuance=DEBUG:INFO". An invalid
// spec leaves every module at INFO.
func SetDefaultLogLevel(logger *log.Log, spec string) {
	if spec == "" {
		log.SetLevel("", log.INFO)

		return
	}

	if err := log.SetSpec(spec); err != nil {
		logger.Warn("Invalid log spec, defaulting to INFO", logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.INFO)

		return
	}

	if strings.Contains(strings.ToUpper(spec), log.DEBUG.String()) {
		logger.Info("Debug logging enabled, performance may be impacted", logfields.WithUserLogLevel(spec))
	}
}
