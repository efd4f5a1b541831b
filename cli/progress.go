package cli

import (
	"fmt"
	"sync"

	"github.com/pterm/pterm"
)

// progressRefresh is how many planned steps pass between spinner updates.
const progressRefresh = 250

type progressSpinner interface {
	Stop() error
	Success(...any)
	Fail(...any)
	UpdateText(string)
}

type progressSpinnerFactory func(string) (progressSpinner, error)

var defaultSpinnerFactory progressSpinnerFactory = func(text string) (progressSpinner, error) {
	spinner, err := pterm.DefaultSpinner.
		WithRemoveWhenDone(false).
		WithText(text).
		Start()
	if err != nil {
		return nil, err
	}
	return spinner, nil
}

// walkProgress shows how far planning got. A disabled walkProgress does nothing.
type walkProgress struct {
	mu       sync.Mutex
	factory  progressSpinnerFactory
	spinner  progressSpinner
	disabled bool
	done     int
	total    int
}

func newWalkProgress(enabled bool, factory progressSpinnerFactory) *walkProgress {
	if factory == nil {
		factory = defaultSpinnerFactory
	}
	return &walkProgress{factory: factory, disabled: !enabled}
}

func progressText(done, total int) string {
	return fmt.Sprintf("planning step %d/%d", done, total)
}

// Update is installed as the planner's progress hook.
func (wp *walkProgress) Update(done, total int) {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	wp.done, wp.total = done, total
	if wp.disabled {
		return
	}
	if wp.spinner == nil {
		spinner, err := wp.factory(progressText(done, total))
		if err != nil {
			// terminal output is best effort
			wp.disabled = true
			return
		}
		wp.spinner = spinner
		return
	}
	if done%progressRefresh == 0 || done == total {
		wp.spinner.UpdateText(progressText(done, total))
	}
}

// Finish reports the outcome of the run and stops the spinner.
func (wp *walkProgress) Finish(err error) {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.spinner == nil {
		return
	}
	if err != nil {
		wp.spinner.Fail(fmt.Sprintf("planning failed after %d/%d steps: %v", wp.done, wp.total, err))
	} else {
		wp.spinner.Success(fmt.Sprintf("planned %d steps", wp.total))
	}
	wp.spinner = nil
}
