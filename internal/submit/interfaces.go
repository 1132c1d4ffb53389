package submit

import (
	"github.com/linksnip/link-shortener/internal/model"
)

// Submitter defines the interface for the submission controller.
type Submitter interface {
	SetUpdateCallback(func(Snapshot))
	SetMessages(Messages)
	Submit(input model.FormInput) error
	Reset() error
	Copy() error
	Snapshot() Snapshot
	Close()
}

// NotificationSink receives user-facing notifications. Fire and forget, the
// controller never reads a result back.
type NotificationSink interface {
	Notify(title, description string, destructive bool)
}

// ClipboardSink receives clipboard writes, best effort.
type ClipboardSink interface {
	SetContent(text string)
}
