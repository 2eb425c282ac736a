package presenter

import "fmt"

// Notification is a user-facing status message.
type Notification struct {
	Text  string
	Error bool
}

// NotifyView shows notifications to the operator.
type NotifyView interface {
	Notify(n Notification)
}

// OutcomeSource yields finished submissions.
type OutcomeSource interface {
	Outcomes() <-chan SubmitOutcome
}

// NotifyPresenter turns submission outcomes into notifications on the UI thread.
type NotifyPresenter struct {
	outcomes <-chan SubmitOutcome
	view     NotifyView
}

func NewNotifyPresenter(src OutcomeSource, view NotifyView) *NotifyPresenter {
	p := &NotifyPresenter{view: view}
	if src != nil {
		p.outcomes = src.Outcomes()
	}
	return p
}

// Tick drains every pending outcome without blocking.
func (p *NotifyPresenter) Tick() {
	if p == nil || p.outcomes == nil || p.view == nil {
		return
	}
	for {
		select {
		case out := <-p.outcomes:
			p.view.Notify(FormatOutcome(out))
		default:
			return
		}
	}
}

// FormatOutcome renders the operator message for a submission.
func FormatOutcome(out SubmitOutcome) Notification {
	if out.Err != nil {
		return Notification{Text: "ROI save failed: " + out.Err.Error(), Error: true}
	}
	return Notification{Text: fmt.Sprintf("ROI for camera %q saved on server.", out.Camera)}
}
