// Package tui implements the interactive `qcc job watch` view: a live,
// self-refreshing display of a job's status that runs until the job
// reaches a terminal state or the user quits.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantacloud/qcc/internal/service"
	"github.com/quantacloud/qcc/models"
)

// ErrUserQuit is returned when the user leaves the watch view before the
// job finishes. The job keeps running server-side.
var ErrUserQuit = errors.New("watch aborted by user")

// WatchJob runs the interactive watch view for the given job, polling its
// status every interval until a terminal status is observed, ctx expires,
// or the user quits. Returns the last observed job record.
func WatchJob(ctx context.Context, jobs service.JobService, id string, interval time.Duration) (models.Job, error) {
	model := newWatchModel(ctx, jobs, id, interval)

	finalModel, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Job{}, err
	}

	result, ok := finalModel.(watchModel)
	if !ok {
		return models.Job{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.job, result.err
	}
	if result.quitByUser {
		return result.job, ErrUserQuit
	}

	return result.job, nil
}
