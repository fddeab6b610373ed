package ui

// List view: filter/sort/low-stock state machine over the catalog.

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/config"
)

type listFocus int

const (
	focusNone listFocus = iota
	focusMinPrice
	focusMaxPrice
	focusThreshold
)

// itemsLoadedMsg delivers the result of a reload. owner identifies the
// view instance and gen the reload that issued it; anything stale is
// dropped on arrival.
type itemsLoadedMsg struct {
	owner int64
	gen   int64
	items []catalog.Item
	err   error
}

// deleteDoneMsg delivers the result of a row delete.
type deleteDoneMsg struct {
	owner int64
	err   error
}

// ListModel owns the list-page state. All query state lives here
// explicitly; nothing is ambient.
type ListModel struct {
	svc    Service
	styles Styles
	owner  int64

	// ListQuery state
	lowMode      bool
	sortAsc      bool
	minBuf       string
	maxBuf       string
	thresholdBuf string

	focus   listFocus
	cursor  int
	rows    []catalog.Item
	loaded  bool
	loading bool
	gen     int64

	errMsg string
	status string

	// pending delete confirmation; empty means none
	confirmID   string
	confirmName string
}

// NewListModel creates a list view with default query state.
func NewListModel(svc Service, styles Styles, defaultThreshold int) *ListModel {
	if defaultThreshold < 0 {
		defaultThreshold = config.DefaultLowStockThreshold
	}
	return &ListModel{
		svc:          svc,
		styles:       styles,
		owner:        nextGen(),
		sortAsc:      true,
		thresholdBuf: strconv.Itoa(defaultThreshold),
	}
}

// Init triggers the first load.
func (m *ListModel) Init() tea.Cmd {
	return m.reload()
}

// effectiveThreshold parses a threshold buffer; anything that is not a
// non-negative integer falls back to the default of 5.
func effectiveThreshold(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return config.DefaultLowStockThreshold
	}
	return n
}

// currentFilter derives the List call parameters from the query state.
// Empty (or unparsable) bound inputs are omitted, not zeroed.
func (m *ListModel) currentFilter() catalog.ListFilter {
	order := "asc"
	if !m.sortAsc {
		order = "desc"
	}
	f := catalog.ListFilter{SortBy: "price", Order: order}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.minBuf), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.maxBuf), 64); err == nil {
		f.MaxPrice = &v
	}
	return f
}

// reload empties the table and fetches per the current query state.
// Exactly one outbound call per reload: low-stock when lowMode is on,
// the filtered list otherwise.
func (m *ListModel) reload() tea.Cmd {
	m.gen = nextGen()
	gen, owner := m.gen, m.owner
	m.loading = true
	m.errMsg = ""
	m.rows = nil
	m.cursor = 0

	svc := m.svc
	if m.lowMode {
		threshold := effectiveThreshold(m.thresholdBuf)
		return func() tea.Msg {
			items, err := svc.LowStock(context.Background(), threshold)
			return itemsLoadedMsg{owner: owner, gen: gen, items: items, err: err}
		}
	}
	filter := m.currentFilter()
	return func() tea.Msg {
		items, err := svc.List(context.Background(), filter)
		return itemsLoadedMsg{owner: owner, gen: gen, items: items, err: err}
	}
}

func (m *ListModel) deleteItem(id string) tea.Cmd {
	svc, owner := m.svc, m.owner
	return func() tea.Msg {
		return deleteDoneMsg{owner: owner, err: svc.Delete(context.Background(), id)}
	}
}

// Update handles messages for the list view.
func (m *ListModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.owner != m.owner || msg.gen != m.gen {
			return nil // stale completion from a superseded reload
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return nil
		}
		m.rows = msg.items
		m.loaded = true
		return nil

	case deleteDoneMsg:
		if msg.owner != m.owner {
			return nil
		}
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return nil
		}
		m.status = "Item deleted"
		return m.reload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirmID != "" {
		return m.handleConfirmKey(msg)
	}
	if m.focus != focusNone {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "l":
		m.lowMode = !m.lowMode
		return m.reload()
	case "s":
		m.sortAsc = !m.sortAsc
		return m.reload()
	case "f":
		// Applying the price filter always leaves low-stock mode.
		m.lowMode = false
		return m.reload()
	case "r":
		return m.reload()
	case "n":
		return navigate(CreateRoute())
	case "enter", "e":
		if row, ok := m.selectedRow(); ok {
			return navigate(EditRoute(strconv.FormatInt(row.ID, 10)))
		}
	case "d":
		if row, ok := m.selectedRow(); ok {
			m.confirmID = strconv.FormatInt(row.ID, 10)
			m.confirmName = row.Name
		}
	case "y":
		if row, ok := m.selectedRow(); ok {
			id := strconv.FormatInt(row.ID, 10)
			if err := clipboard.WriteAll(id); err != nil {
				m.status = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.status = "Copied id " + id
			}
		}
	case "tab":
		m.focus = focusMinPrice
	case "esc":
		m.errMsg = ""
		m.status = ""
	}
	return nil
}

func (m *ListModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.confirmName = ""
		m.status = "Deleting…"
		return m.deleteItem(id)
	case "n", "esc":
		// Declined: no call is made, the row stays.
		m.confirmID = ""
		m.confirmName = ""
	}
	return nil
}

func (m *ListModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	buf := m.focusedBuf()
	switch msg.String() {
	case "tab":
		switch m.focus {
		case focusMinPrice:
			m.focus = focusMaxPrice
		case focusMaxPrice:
			m.focus = focusThreshold
		default:
			m.focus = focusNone
		}
	case "esc":
		m.focus = focusNone
	case "enter":
		wasThreshold := m.focus == focusThreshold
		m.focus = focusNone
		if wasThreshold {
			// Threshold changes only matter while in low-stock mode.
			if m.lowMode {
				return m.reload()
			}
			return nil
		}
		m.lowMode = false
		return m.reload()
	case "backspace":
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.') {
			if m.focus == focusThreshold && s == "." {
				return nil
			}
			*buf += s
		}
	}
	return nil
}

func (m *ListModel) focusedBuf() *string {
	switch m.focus {
	case focusMinPrice:
		return &m.minBuf
	case focusMaxPrice:
		return &m.maxBuf
	default:
		return &m.thresholdBuf
	}
}

func (m *ListModel) selectedRow() (catalog.Item, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return catalog.Item{}, false
	}
	return m.rows[m.cursor], true
}

// View renders the list page.
func (m *ListModel) View() string {
	var b strings.Builder

	b.WriteString(renderListControls(m))
	b.WriteString("\n\n")

	if m.confirmID != "" {
		prompt := fmt.Sprintf("Delete %q (id %s)? ", m.confirmName, m.confirmID)
		b.WriteString(m.styles.Warning.Render(prompt) +
			m.styles.KeyHint.Render("y confirm · n cancel"))
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Dim.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(renderListTable(m))
	b.WriteString("\n\n")
	b.WriteString(renderListFooter(m.styles))
	return b.String()
}

// renderListControls is pure: query state in, one line of markup out.
func renderListControls(m *ListModel) string {
	s := m.styles

	mode := "All items"
	if m.lowMode {
		mode = fmt.Sprintf("Low stock (≤ %d)", effectiveThreshold(m.thresholdBuf))
	}

	sortLabel := "price ↑"
	if !m.sortAsc {
		sortLabel = "price ↓"
	}

	parts := []string{
		s.Selected.Render(mode),
		s.Dim.Render("sort ") + s.Base.Render(sortLabel),
		renderInput(s, "min", m.minBuf, m.focus == focusMinPrice),
		renderInput(s, "max", m.maxBuf, m.focus == focusMaxPrice),
		renderInput(s, "threshold", m.thresholdBuf, m.focus == focusThreshold),
	}
	return strings.Join(parts, s.Muted.Render("  │  "))
}

func renderInput(s Styles, label, value string, active bool) string {
	if value == "" {
		value = "·"
	}
	field := s.Base.Render(value)
	if active {
		field = s.InputActive.Render(value + "█")
	}
	return s.Dim.Render(label+" ") + field
}

// renderListTable is pure: rows in, table markup out. The table header
// always renders; the body is rows, a loading note, the no-items
// indicator, or nothing when an error line already explains the state.
func renderListTable(m *ListModel) string {
	table := Table{
		Headers: []string{"ID", "NAME", "QTY", "PRICE"},
		Rows:    make([][]string, 0, len(m.rows)),
	}
	for i, it := range m.rows {
		name := it.Name
		if i == m.cursor {
			name = m.styles.Selected.Render("▸ " + it.Name)
		} else {
			name = "  " + name
		}
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(it.ID, 10),
			name,
			strconv.Itoa(it.Quantity),
			fmt.Sprintf("%.2f", it.Price),
		})
	}

	out := table.Render(m.styles)
	switch {
	case m.loading:
		out += "\n" + m.styles.Dim.Render("Loading…")
	case len(m.rows) == 0 && m.errMsg == "" && m.loaded:
		out += "\n" + m.styles.Dim.Render("No items found")
	}
	return out
}

func renderListFooter(s Styles) string {
	hints := []string{
		"n new", "e edit", "d delete", "l low-stock", "s sort",
		"f filter", "tab inputs", "y copy id", "r reload", "q quit",
	}
	return s.Footer.Render(strings.Join(hints, " · "))
}

// errorMessage extracts the user-facing message from a view-boundary
// failure, preferring the service's structured message.
func errorMessage(err error) string {
	var ce *catalog.Error
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
