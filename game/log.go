package game

import "github.com/sirupsen/logrus"

// Contract breaches are recovered with a forced draw, but they usually
// mean a bot is buggy, so they are logged through the standard logger.
var logger = logrus.WithField("component", "engine")
