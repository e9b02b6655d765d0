package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. The viewer owns the terminal, so
// when interactive is set logs go to logFile, or nowhere without one.
// The returned close function releases the log file.
func NewLogger(level, logFile string, interactive bool) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)

	closeFn := func() error { return nil }
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		log.SetOutput(f)
		closeFn = f.Close
	case interactive:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}

	return log, closeFn, nil
}
