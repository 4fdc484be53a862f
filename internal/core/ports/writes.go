package ports

import "context"

// WriteTask is a best-effort mutation executed off the request path.
type WriteTask struct {
	Collection string
	DocumentID string
	Op         string
	Run        func(ctx context.Context) error
}

// Key groups tasks that must run in submission order.
func (t WriteTask) Key() string {
	return t.Collection + "/" + t.DocumentID
}

// WriteQueue accepts non-blocking writes. Failures are logged and counted,
// never reported back to the submitter.
type WriteQueue interface {
	Submit(task WriteTask)
}
