package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Task is one step of the shutdown sequence.
type Task struct {
	Name     string
	Timeout  time.Duration
	Shutdown func(context.Context) error
}

// WaitForGracefulShutdown blocks until SIGINT/SIGTERM arrives or ctx is done,
// then runs the shutdown tasks in order.
func WaitForGracefulShutdown(ctx context.Context, total time.Duration, logger *logrus.Logger, tasks ...Task) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Received shutdown signal, initiating graceful shutdown...")
	case <-ctx.Done():
		logger.Info("Context done, initiating graceful shutdown...")
	}

	return Shutdown(total, logger, tasks...)
}

// Shutdown runs tasks sequentially, each bounded by its own timeout and all of
// them by total. Once the total deadline passes the remaining tasks are skipped.
func Shutdown(total time.Duration, logger *logrus.Logger, tasks ...Task) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), total)
	defer cancel()

	var shutdownErrs error
	for _, task := range tasks {
		if task.Shutdown == nil {
			logger.Debugf("Skipping shutdown for %s (nil function)", task.Name)
			continue
		}

		taskCtx, taskCancel := shutdownCtx, context.CancelFunc(func() {})
		if task.Timeout > 0 {
			taskCtx, taskCancel = context.WithTimeout(shutdownCtx, task.Timeout)
		}

		logger.Infof("Attempting to shut down %s (timeout: %s)...", task.Name, task.Timeout)
		if err := task.Shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.Name, err))
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Warnf("%s shutdown timed out after %s", task.Name, task.Timeout)
			}
		} else {
			logger.Infof("%s shutdown complete", task.Name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown. Aborting further steps.", total, task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		return shutdownErrs
	}
	logger.Info("Application shutdown completed successfully")
	return nil
}
