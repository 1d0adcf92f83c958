package tui

import (
	"github.com/quantacloud/qcc/models"
)

type jobFetchedMsg struct {
	job models.Job
	err error
}

type pollMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
