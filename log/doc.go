/*
Package log allows consumers of the pondfinder module to forward its log
messages into their own logging solution of choice. By default, all log
messages get discarded, so this module stays silent unless explicitly asked
to speak up.

To send pondfinder log messages to the standard [logrus] logger, simply
blank-import the adapter sub-package:

	import _ "github.com/siemens/pondfinder/log/logrus"

Other logging backends can be hooked up by implementing the tiny [Logger]
interface and installing it using [SetLogger]. The level of detail is
controlled using [SetLevel]; detection passes trace their individual probe
outcomes at [DebugLevel] only.

[logrus]: https://github.com/sirupsen/logrus
*/
package log
