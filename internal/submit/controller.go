package submit

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/linksnip/link-shortener/internal/client"
	"github.com/linksnip/link-shortener/internal/model"
)

// CopyResetDelay is how long the copied confirmation stays visible
const CopyResetDelay = 2 * time.Second

var (
	// ErrSubmitInFlight means a submission is already running
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrNoResult means there is no displayed short link to act on
	ErrNoResult = errors.New("no result to act on")

	// ErrClosed means the controller was torn down
	ErrClosed = errors.New("controller closed")
)

// Snapshot is an immutable view of the controller state for rendering.
// Link holds the last successful result; it stays visible while a new
// submission is in flight and is replaced or cleared when that submission
// resolves.
type Snapshot struct {
	Status     model.SubmissionStatus
	Link       model.ShortenedLink
	JustCopied bool
}

// HasLink returns true if a short link is available for display
func (s Snapshot) HasLink() bool {
	return s.Link.ShortURL != ""
}

// Messages are the user-facing notification texts
type Messages struct {
	SuccessTitle string
	SuccessBody  string
	FailedTitle  string
	FailedBody   string
	CopiedTitle  string
	CopiedBody   string
}

// DefaultMessages returns the English notification texts
func DefaultMessages() Messages {
	return Messages{
		SuccessTitle: "Success",
		SuccessBody:  "Your URL has been shortened",
		FailedTitle:  "Error",
		FailedBody:   "Failed to shorten URL. Please try again.",
		CopiedTitle:  "Copied",
		CopiedBody:   "Short link copied to clipboard",
	}
}

// Controller handles the submission lifecycle for one form instance
type Controller struct {
	shortener client.Shortener

	mu         sync.RWMutex
	status     model.SubmissionStatus
	link       model.ShortenedLink
	justCopied bool
	closed     bool

	copyTimer *time.Timer
	copySeq   uint64
	copyDelay time.Duration

	notifications NotificationSink
	clipboard     ClipboardSink
	messages      Messages

	onUpdate func(Snapshot) // callback for UI updates
}

// NewController creates a controller in the Idle state. Both sinks may be
// nil, in which case the corresponding effect is skipped.
func NewController(shortener client.Shortener, notifications NotificationSink, clipboard ClipboardSink) *Controller {
	return &Controller{
		shortener:     shortener,
		status:        model.SubmissionStatusIdle,
		copyDelay:     CopyResetDelay,
		notifications: notifications,
		clipboard:     clipboard,
		messages:      DefaultMessages(),
	}
}

// SetUpdateCallback sets the callback function for state updates
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.onUpdate = callback
}

// SetMessages overrides the notification texts, used for localization
func (c *Controller) SetMessages(m Messages) {
	c.messages = m
}

// Snapshot returns the current state for rendering
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Status:     c.status,
		Link:       c.link,
		JustCopied: c.justCopied,
	}
}

// Submit starts shortening a validated input in the background. At most one
// submission runs per controller, a second call while one is in flight is
// rejected with ErrSubmitInFlight.
func (c *Controller) Submit(input model.FormInput) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.status.CanSubmit() {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	c.status = model.SubmissionStatusSubmitting
	c.justCopied = false
	c.stopCopyTimerLocked()
	c.mu.Unlock()

	log.Printf("Submitting URL for shortening: %s", input.LongURL)
	c.notifyUpdate()

	go c.runSubmit(input)

	return nil
}

// runSubmit performs the network call and applies the outcome
func (c *Controller) runSubmit(input model.FormInput) {
	link, err := c.shortener.Shorten(context.Background(), input)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		log.Printf("Submission resolved after close, dropping result")
		return
	}
	if err != nil {
		c.status = model.SubmissionStatusFailed
		c.link = model.ShortenedLink{}
	} else {
		c.status = model.SubmissionStatusSucceeded
		c.link = link
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("Submission failed: %v", err)
		c.notify(c.messages.FailedTitle, c.messages.FailedBody, true)
	} else {
		log.Printf("URL shortened: %s -> %s", link.LongURL, link.ShortURL)
		c.notify(c.messages.SuccessTitle, c.messages.SuccessBody, false)
	}

	c.notifyUpdate()
}

// Reset discards the displayed result and returns to the initial state.
// Rejected while a submission is in flight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status.IsActive() {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	c.status = model.SubmissionStatusIdle
	c.link = model.ShortenedLink{}
	c.justCopied = false
	c.stopCopyTimerLocked()
	c.mu.Unlock()

	log.Printf("Form reset to initial state")
	c.notifyUpdate()

	return nil
}

// Copy puts the short link on the clipboard and raises the copied flag for
// the reset window. A second copy inside the window restarts it. Only
// available while a result is displayed.
func (c *Controller) Copy() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status != model.SubmissionStatusSucceeded {
		c.mu.Unlock()
		return ErrNoResult
	}

	shortURL := c.link.ShortURL
	c.justCopied = true
	c.stopCopyTimerLocked()
	c.copySeq++
	seq := c.copySeq
	c.copyTimer = time.AfterFunc(c.copyDelay, func() {
		c.expireCopied(seq)
	})
	c.mu.Unlock()

	if c.clipboard != nil {
		c.clipboard.SetContent(shortURL)
	}

	log.Printf("Short URL copied to clipboard: %s", shortURL)
	c.notify(c.messages.CopiedTitle, c.messages.CopiedBody, false)
	c.notifyUpdate()

	return nil
}

// Close tears the controller down. A submission still in flight resolves
// into nothing: no state change, no notification. The copied timer is
// cancelled.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopCopyTimerLocked()
	c.mu.Unlock()

	log.Printf("Submission controller closed")
}

// expireCopied clears the copied flag when its window elapses. A stale
// timer that lost the race to a newer copy leaves the state alone.
func (c *Controller) expireCopied(seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.copySeq || !c.justCopied {
		c.mu.Unlock()
		return
	}
	c.justCopied = false
	c.mu.Unlock()

	c.notifyUpdate()
}

// stopCopyTimerLocked cancels a pending copied-flag reset. Caller holds mu.
func (c *Controller) stopCopyTimerLocked() {
	if c.copyTimer != nil {
		c.copyTimer.Stop()
		c.copyTimer = nil
	}
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate(c.Snapshot())
	}
}

// notify forwards a notification to the sink if one is attached
func (c *Controller) notify(title, description string, destructive bool) {
	if c.notifications != nil {
		c.notifications.Notify(title, description, destructive)
	}
}
