package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// setupLogging routes logrus output to w at the named level.
func setupLogging(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(w)
	logrus.SetLevel(lvl)
	return nil
}
