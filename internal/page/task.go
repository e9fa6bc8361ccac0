package page

// Apply mutates the document. It must run on the UI thread.
type Apply func()

// Task performs blocking work off the UI thread and returns the continuation to apply.
// A nil Task means there is nothing to do.
type Task func() Apply

// Join runs tasks in order and applies their continuations in the same order. Nil tasks
// and nil continuations are skipped. It returns nil when every task is nil.
func Join(tasks ...Task) Task {
	pending := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			pending = append(pending, t)
		}
	}

	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0]
	}

	return func() Apply {
		applies := make([]Apply, 0, len(pending))
		for _, t := range pending {
			if a := t(); a != nil {
				applies = append(applies, a)
			}
		}
		return func() {
			for _, a := range applies {
				a()
			}
		}
	}
}

// Run executes t and its continuation on the calling goroutine.
//
// Used by non-interactive callers and tests, where the caller is the only thread.
func Run(t Task) {
	if t == nil {
		return
	}
	if a := t(); a != nil {
		a()
	}
}
