package main

import (
	"fmt"
	"io"
	"nym-chat/domain"
	"nym-chat/observability"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type kind int

const (
	kindEmpty kind = iota
	kindSend
	kindHistory
	kindFind
	kindStats
	kindAddress
	kindHelp
	kindQuit
	kindUnknown
)

type command struct {
	kind      kind
	recipient string
	payload   string
	direction domain.Direction
	limit     int
	terms     string
}

const usage = `Commands:
  <recipient> <message>           send a message
  /history [sent|received] [n]    last n entries of a log (received by default)
  /find <terms>                   search both logs
  /address                        show your address
  /stats                          session counters
  /quit                           leave`

// parseCommand reads one input line. A line that is not a command is a send:
// the first word is the recipient, the rest is the message.
func parseCommand(line string, defaultLimit int) command {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{kind: kindEmpty}
	}
	if !strings.HasPrefix(line, "/") {
		recipient, payload, _ := strings.Cut(line, " ")
		return command{kind: kindSend, recipient: recipient, payload: strings.TrimSpace(payload)}
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/history":
		cmd := command{kind: kindHistory, direction: domain.Received, limit: defaultLimit}
		for _, arg := range fields[1:] {
			switch {
			case arg == string(domain.Sent) || arg == string(domain.Received):
				cmd.direction = domain.Direction(arg)
			default:
				if n, err := strconv.Atoi(arg); err == nil && n > 0 {
					cmd.limit = n
				}
			}
		}
		return cmd
	case "/find":
		return command{kind: kindFind, terms: strings.TrimSpace(strings.TrimPrefix(line, "/find"))}
	case "/stats":
		return command{kind: kindStats}
	case "/address":
		return command{kind: kindAddress}
	case "/help":
		return command{kind: kindHelp}
	case "/quit", "/exit":
		return command{kind: kindQuit}
	default:
		return command{kind: kindUnknown}
	}
}

// Console is the terminal host. It is called from the event loop and from
// the input goroutine, so writes are serialized.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	address string
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowAddress(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = address
	fmt.Fprintln(c.out, color.New(color.FgGreen, color.OpBold).Sprintf("Your address: %s", address))
}

func (c *Console) OnEntry(entry domain.LogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch entry.Direction {
	case domain.Sent:
		fmt.Fprintln(c.out, color.Cyan.Sprintf(">> [%s] %s", entry.TimeOfDay, entry.Text))
	default:
		fmt.Fprintln(c.out, color.Magenta.Sprintf("<< [%s] %s", entry.TimeOfDay, entry.Text))
	}
}

func (c *Console) Address() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address, c.address != ""
}

func (c *Console) Println(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, text)
}

func (c *Console) Error(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, color.Red.Sprintf("!! %v", err))
}

// Entries renders entries as a borderless table.
func (c *Console) Entries(entries []domain.LogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, color.Gray.Sprint("(nothing)"))
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Direction", "Message", "Time", "Date"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, entry := range entries {
		table.Append([]string{string(entry.Direction), entry.Text, entry.TimeOfDay, entry.CalendarDate})
	}
	table.Render()
}

func (c *Console) Stats(stats observability.SessionStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"sent", fmt.Sprintf("%d (%s)", stats.FramesSent, humanize.Bytes(stats.BytesSent))},
		{"received", fmt.Sprintf("%d (%s)", stats.FramesReceived, humanize.Bytes(stats.BytesReceived))},
		{"dropped", strconv.FormatUint(stats.DroppedSends, 10)},
		{"failed", strconv.FormatUint(stats.FailedSends, 10)},
		{"rejected", strconv.FormatUint(stats.RejectedInputs, 10)},
		{"uptime", stats.Uptime.Round(time.Second).String()},
	})
	if stats.ProcessAvailable {
		table.Append([]string{"memory", humanize.Bytes(stats.RamBytes)})
		table.Append([]string{"cpu", fmt.Sprintf("%.1f%%", stats.CpuPercent)})
	}
	table.Render()
}
