package ui

import (
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/linksnip/link-shortener/internal/model"
)

// LinkRow represents a compact history row widget
type LinkRow struct {
	widget.BaseWidget

	entry        *model.HistoryEntry
	localization *Localization

	// UI components
	shortURLLabel *widget.Label
	longURLLabel  *widget.Label
	expiryLabel   *widget.Label

	// Action buttons
	copyBtn   *widget.Button
	openBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onCopy   func(shortURL string)
	onOpen   func(shortURL string)
	onRemove func(entryID string)
}

// NewLinkRow creates a new history row widget
func NewLinkRow(entry *model.HistoryEntry, localization *Localization) *LinkRow {
	if entry == nil {
		log.Printf("Warning: NewLinkRow called with nil entry")
		// Create a placeholder entry to prevent crashes
		entry = &model.HistoryEntry{ID: "placeholder"}
	}

	lr := &LinkRow{
		entry:        entry,
		localization: localization,
	}
	lr.ExtendBaseWidget(lr)
	lr.createUI()
	lr.updateFromEntry()
	return lr
}

// SetCallbacks sets the action callbacks
func (lr *LinkRow) SetCallbacks(
	onCopy func(shortURL string),
	onOpen func(shortURL string),
	onRemove func(entryID string),
) {
	lr.onCopy = onCopy
	lr.onOpen = onOpen
	lr.onRemove = onRemove
}

// UpdateEntry updates the row with new entry data
func (lr *LinkRow) UpdateEntry(entry *model.HistoryEntry) {
	if entry == nil {
		log.Printf("Warning: UpdateEntry called with nil entry for row %s", lr.entry.ID)
		return
	}

	lr.entry = entry
	lr.updateFromEntry()
	lr.Refresh()
}

// createUI creates the UI components
func (lr *LinkRow) createUI() {
	lr.shortURLLabel = widget.NewLabel("")
	lr.shortURLLabel.TextStyle = fyne.TextStyle{Bold: true}
	lr.shortURLLabel.Alignment = fyne.TextAlignLeading
	lr.shortURLLabel.Truncation = fyne.TextTruncateEllipsis

	lr.longURLLabel = widget.NewLabel("")
	lr.longURLLabel.Alignment = fyne.TextAlignLeading
	lr.longURLLabel.Truncation = fyne.TextTruncateEllipsis

	lr.expiryLabel = widget.NewLabel("")
	lr.expiryLabel.Alignment = fyne.TextAlignTrailing

	lr.copyBtn = widget.NewButton(lr.localization.GetText(KeyCopy), func() {
		current := lr.entry
		if lr.onCopy == nil {
			log.Printf("onCopy callback is nil for entry %s", current.ID)
			return
		}
		if current.ShortURL == "" {
			log.Printf("No short URL available for entry %s", current.ID)
			return
		}
		lr.onCopy(current.ShortURL)
	})
	lr.copyBtn.Importance = widget.MediumImportance

	lr.openBtn = widget.NewButton(lr.localization.GetText(KeyOpen), func() {
		current := lr.entry
		if lr.onOpen == nil {
			log.Printf("onOpen callback is nil for entry %s", current.ID)
			return
		}
		if current.ShortURL == "" {
			log.Printf("No short URL available for entry %s", current.ID)
			return
		}
		lr.onOpen(current.ShortURL)
	})
	lr.openBtn.Importance = widget.MediumImportance

	lr.removeBtn = widget.NewButton(IconDelete, func() {
		current := lr.entry
		if lr.onRemove == nil {
			log.Printf("onRemove callback is nil for entry %s", current.ID)
			return
		}
		lr.onRemove(current.ID)
	})
	lr.removeBtn.Importance = widget.LowImportance
}

// updateFromEntry updates UI components based on entry data
func (lr *LinkRow) updateFromEntry() {
	if lr.entry == nil {
		log.Printf("Warning: updateFromEntry called with nil entry")
		return
	}

	link := lr.entry.Link()

	lr.shortURLLabel.SetText(link.ShortURL)
	lr.longURLLabel.SetText(link.DisplayLongURL(LongURLDisplayLimit))

	if expiry, err := link.ExpiryTime(); err == nil {
		lr.expiryLabel.SetText(lr.localization.FormatLongDate(expiry.Local()))
	} else {
		lr.expiryLabel.SetText(DashPlaceholder)
	}

	lr.updateButtons()
}

// updateButtons updates button states based on entry data
func (lr *LinkRow) updateButtons() {
	lr.copyBtn.SetText(lr.localization.GetText(KeyCopy))
	lr.openBtn.SetText(lr.localization.GetText(KeyOpen))

	// Copy and Open only make sense for a real http(s) short URL
	if lr.entry.ShortURL != "" && strings.HasPrefix(lr.entry.ShortURL, "http") {
		lr.copyBtn.Enable()
		lr.openBtn.Enable()
	} else {
		lr.copyBtn.Disable()
		lr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (lr *LinkRow) CreateRenderer() fyne.WidgetRenderer {
	return &linkRowRenderer{linkRow: lr}
}

// linkRowRenderer renders the link row widget
type linkRowRenderer struct {
	linkRow *LinkRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *linkRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *linkRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *linkRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *linkRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *linkRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *linkRowRenderer) createLayout() {
	lr := r.linkRow

	// Left side: short URL over truncated long URL
	leftSide := container.NewVBox(lr.shortURLLabel, lr.longURLLabel)

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Right side: expiry date plus the action buttons pinned to the edge
	actionRow := container.NewHBox(lr.copyBtn, lr.openBtn, lr.removeBtn)
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, fixedWidth(DateLabelWidth, lr.expiryLabel))

	// Border with center expandable labels and right cluster pinned
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	separator := widget.NewSeparator()

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
