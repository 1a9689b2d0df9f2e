package game

import "github.com/sirupsen/logrus"

// Log is the default logger for boards and sessions
var Log = logrus.New()
