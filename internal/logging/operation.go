package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Operation runs fn with a fresh LogData on its context and logs the outcome under
// Operation.<name>. Session fields already on ctx are carried over.
func Operation(
	ctx context.Context,
	loggingName string,
	log *logrus.Logger,
	fn func(ctx context.Context, logData *LogData) error,
) error {
	logData := NewLogData(log)
	logData.Inherit(GetLogData(ctx))
	ctx = WithLogData(ctx, logData)

	logData.Log().Debugf("Operation.%v.Start", loggingName)

	endTimer := logData.AddTiming("durationMs")
	err := fn(ctx, logData)
	endTimer()

	if err != nil {
		logData.Log().WithError(err).Errorf("Operation.%v.Error", loggingName)
		return err
	}

	logData.Log().Infof("Operation.%v.Complete", loggingName)
	return nil
}
