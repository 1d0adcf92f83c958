package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantacloud/qcc/internal/service"
	"github.com/quantacloud/qcc/models"
)

type watchModel struct {
	ctx      context.Context
	jobs     service.JobService
	jobID    string
	interval time.Duration

	spinner spinner.Model
	job     models.Job
	fetched bool
	status  string

	quitByUser bool
	err        error
}

func newWatchModel(ctx context.Context, jobs service.JobService, id string, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return watchModel{
		ctx:      ctx,
		jobs:     jobs,
		jobID:    id,
		interval: interval,
		spinner:  s,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdFetch())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = !m.job.Finished()
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyID()
		}

	case jobFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}

		m.job = msg.job
		m.fetched = true
		if m.job.Finished() {
			return m, tea.Quit
		}
		return m, m.cmdSchedulePoll()

	case pollMsg:
		return m, m.cmdFetch()

	case copiedMsg:
		m.status = "job ID copied"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	var body string

	switch {
	case m.err != nil:
		body = errorStyle.Render("error: " + m.err.Error())
	case !m.fetched:
		body = m.spinner.View() + " fetching job " + m.jobID
	case m.job.Finished():
		body = fmt.Sprintf("job %s %s", m.job.ID, renderStatus(string(m.job.Status)))
		if rt, ok := m.job.RunningTime(); ok {
			body += helpStyle.Render(fmt.Sprintf("  (ran %s)", rt))
		}
	default:
		body = fmt.Sprintf("%s job %s on %s: %s",
			m.spinner.View(), m.job.ID, m.job.Target, renderStatus(string(m.job.Status)))
	}

	if m.status != "" {
		body += "\n" + helpStyle.Render(m.status)
	}
	body += "\n" + helpStyle.Render("c copy ID • q quit")

	return appStyle.Render(body)
}

func (m watchModel) cmdFetch() tea.Cmd {
	return func() tea.Msg {
		job, err := m.jobs.Get(m.ctx, m.jobID)
		return jobFetchedMsg{job: job, err: err}
	}
}

func (m watchModel) cmdSchedulePoll() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (m watchModel) cmdCopyID() tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(m.jobID); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
