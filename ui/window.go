// Package ui is the desktop window of the chat client.
// It shows what the core hands it and forwards user input; it holds no
// message rules and never touches the connection.
package ui

import (
	"image/color"
	"nym-chat/domain"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	Title              = "Nym Messaging Client"
	AddressPlaceholder = "Fetching address..."
)

var (
	CyanNeon = color.NRGBA{R: 0, G: 243, B: 255, A: 255}
	RedNeon  = color.NRGBA{R: 255, G: 0, B: 60, A: 255}
)

var columns = []string{"Message", "Time", "Date"}

// SubmitFunc hands user input to the core. A non-nil error is shown to the user.
type SubmitFunc func(recipient, payload string) error

// Window is the fyne host. Its exported methods may be called from any
// goroutine; widget updates are handed to the fyne thread.
type Window struct {
	window fyne.Window
	submit SubmitFunc

	inbox    *logTable
	sent     *logTable
	tabs     *container.AppTabs
	address  *widget.Entry
	selfAddr string

	Recipient *widget.Entry
	Message   *widget.Entry
	Send      *widget.Button
	Copy      *widget.Button
	Status    *canvas.Text
}

func NewWindow(app fyne.App, submit SubmitFunc) *Window {
	w := &Window{
		window: app.NewWindow(Title),
		submit: submit,
		inbox:  newLogTable(),
		sent:   newLogTable(),
	}

	w.Recipient = widget.NewEntry()
	w.Recipient.SetPlaceHolder("Recipient Address")
	w.Message = widget.NewEntry()
	w.Message.SetPlaceHolder("Type your message here")
	w.Message.OnSubmitted = func(string) { w.onSend() }
	w.Send = widget.NewButton("Send", w.onSend)

	w.address = widget.NewEntry()
	w.address.SetPlaceHolder(AddressPlaceholder)
	w.address.Disable()
	w.Copy = widget.NewButton("Copy to Clipboard", w.onCopy)

	w.Status = canvas.NewText("", CyanNeon)

	compose := container.NewVBox(
		w.Recipient,
		w.Message,
		w.Send,
		container.NewBorder(nil, nil, nil, w.Copy, w.address),
		w.Status,
	)
	w.tabs = container.NewAppTabs(
		container.NewTabItem("Inbox", w.inbox.table),
		container.NewTabItem("Sent", container.NewBorder(nil, compose, nil, nil, w.sent.table)),
	)

	w.window.SetContent(w.tabs)
	w.window.Resize(fyne.NewSize(720, 520))
	return w
}

// ShowAndRun blocks on the fyne event loop until the window is closed.
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

func (w *Window) ShowAddress(address string) {
	fyne.Do(func() {
		w.selfAddr = address
		w.address.SetText(address)
	})
}

// OnEntry adds a stamped entry to the tab of its direction.
func (w *Window) OnEntry(entry domain.LogEntry) {
	fyne.Do(func() {
		switch entry.Direction {
		case domain.Sent:
			w.sent.append(entry)
		case domain.Received:
			w.inbox.append(entry)
		}
	})
}

// Rows returns the number of lines shown for a direction. Meant for the fyne thread.
func (w *Window) Rows(direction domain.Direction) int {
	if direction == domain.Sent {
		return len(w.sent.rows)
	}
	return len(w.inbox.rows)
}

// Address is the text of the address slot. Meant for the fyne thread.
func (w *Window) Address() string {
	return w.address.Text
}

func (w *Window) onSend() {
	if err := w.submit(w.Recipient.Text, w.Message.Text); err != nil {
		w.setStatus(err.Error(), RedNeon)
		return
	}
	w.Message.SetText("")
	w.setStatus("", CyanNeon)
}

func (w *Window) onCopy() {
	if w.selfAddr == "" {
		return
	}
	w.window.Clipboard().SetContent(w.selfAddr)
	w.setStatus("Address copied", CyanNeon)
}

func (w *Window) setStatus(text string, c color.Color) {
	w.Status.Text = text
	w.Status.Color = c
	w.Status.Refresh()
}

type logTable struct {
	rows  []domain.LogEntry
	table *widget.Table
}

func newLogTable() *logTable {
	t := &logTable{}
	t.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(t.rows), len(columns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(t.cell(id))
		},
	)
	t.table.ShowHeaderColumn = false
	t.table.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("") }
	t.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(columns) {
			o.(*widget.Label).SetText(columns[id.Col])
		}
	}
	t.table.SetColumnWidth(0, 420)
	t.table.SetColumnWidth(1, 90)
	t.table.SetColumnWidth(2, 110)
	return t
}

func (t *logTable) append(entry domain.LogEntry) {
	t.rows = append(t.rows, entry)
	t.table.Refresh()
	t.table.ScrollToBottom()
}

func (t *logTable) cell(id widget.TableCellID) string {
	if id.Row < 0 || id.Row >= len(t.rows) {
		return ""
	}
	entry := t.rows[id.Row]
	switch id.Col {
	case 0:
		return entry.Text
	case 1:
		return entry.TimeOfDay
	default:
		return entry.CalendarDate
	}
}
