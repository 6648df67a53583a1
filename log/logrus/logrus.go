// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

/*
Package logrus forwards pondfinder log messages to the standard [logrus]
logger. To enable forwarding, blank-import this package:

	import _ "github.com/siemens/pondfinder/log/logrus"

The pondfinder log level and the logrus log level act independently of each
other: for pondfinder debug messages to appear, both levels need to be
raised to their respective debug levels.

[logrus]: https://github.com/sirupsen/logrus
*/
package logrus

import (
	"github.com/siemens/pondfinder/log"
	"github.com/sirupsen/logrus"
)

func init() {
	log.SetLogger(&adapter{})
}

// adapter implements the pondfinder [log.Logger] interface on top of the
// standard logrus logger.
type adapter struct{}

// Log emits the given message through the standard logrus logger, mapping
// the pondfinder log level onto its logrus counterpart.
func (a *adapter) Log(level log.Level, msg string) {
	switch level {
	case log.ErrorLevel:
		logrus.StandardLogger().Error(msg)
	case log.WarnLevel:
		logrus.StandardLogger().Warn(msg)
	case log.InfoLevel:
		logrus.StandardLogger().Info(msg)
	default:
		logrus.StandardLogger().Debug(msg)
	}
}
