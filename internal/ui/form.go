package ui

// Create/edit form view built on a huh form bound to string buffers.

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tturner/stockdeck/internal/catalog"
)

// itemLoadedMsg delivers the item fetched for edit mode.
type itemLoadedMsg struct {
	owner int64
	item  catalog.Item
	err   error
}

// submitDoneMsg delivers the result of a create or update call.
type submitDoneMsg struct {
	owner int64
	err   error
}

// FormModel owns the create/edit form lifecycle: Loading (edit only)
// → Editing → Submitting → navigate away, or back to Editing with an
// error shown.
type FormModel struct {
	svc    Service
	styles Styles
	owner  int64

	// id is empty in create mode. It is kept opaque: a failed load
	// does not stop a later submit from targeting the same id.
	id string

	name        string
	description string
	quantity    string
	price       string

	form       *huh.Form
	loading    bool
	submitting bool
	errMsg     string
}

// NewFormModel creates a form view. An empty id means create mode;
// otherwise the item is loaded asynchronously for editing.
func NewFormModel(svc Service, styles Styles, id string) *FormModel {
	m := &FormModel{
		svc:    svc,
		styles: styles,
		owner:  nextGen(),
		id:     id,
	}
	m.loading = id != ""
	m.form = m.buildForm()
	return m
}

func (m *FormModel) buildForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Key("name").
			Value(&m.name),
		huh.NewInput().
			Title("Description").
			Key("description").
			Value(&m.description),
		huh.NewInput().
			Title("Quantity").
			Key("quantity").
			Value(&m.quantity),
		huh.NewInput().
			Title("Price").
			Key("price").
			Value(&m.price),
	))
}

// Init starts the form and, in edit mode, the item load.
func (m *FormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init()}
	if m.id != "" {
		svc, id, owner := m.svc, m.id, m.owner
		cmds = append(cmds, func() tea.Msg {
			item, err := svc.Get(context.Background(), id)
			return itemLoadedMsg{owner: owner, item: item, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m *FormModel) submit(in catalog.ItemInput) tea.Cmd {
	svc, id, owner := m.svc, m.id, m.owner
	if id != "" {
		return func() tea.Msg {
			_, err := svc.Update(context.Background(), id, in)
			return submitDoneMsg{owner: owner, err: err}
		}
	}
	return func() tea.Msg {
		_, err := svc.Create(context.Background(), in)
		return submitDoneMsg{owner: owner, err: err}
	}
}

// Update handles messages for the form view.
func (m *FormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemLoadedMsg:
		if msg.owner != m.owner {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			// Fields stay empty; the form remains usable and a later
			// submit still targets the same id.
			m.errMsg = errorMessage(msg.err)
			return nil
		}
		m.name = msg.item.Name
		m.description = msg.item.Description
		m.quantity = strconv.Itoa(msg.item.Quantity)
		m.price = strconv.FormatFloat(msg.item.Price, 'f', -1, 64)
		m.form = m.buildForm()
		return m.form.Init()

	case submitDoneMsg:
		if msg.owner != m.owner {
			return nil
		}
		m.submitting = false
		if msg.err != nil {
			// Keep the user's input for correction.
			m.errMsg = errorMessage(msg.err)
			m.form = m.buildForm()
			return m.form.Init()
		}
		return navigate(ListRoute())

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Cancel discards unsaved input unconditionally.
			return navigate(ListRoute())
		case "ctrl+q":
			return tea.Quit
		}
	}

	if m.submitting {
		return nil
	}

	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.errMsg = ""
		in, violations := parseItemForm(m.name, m.description, m.quantity, m.price)
		if len(violations) > 0 {
			// Abort locally: no network call leaves the view.
			m.errMsg = strings.Join(violations, "; ")
			m.form = m.buildForm()
			return tea.Batch(cmd, m.form.Init())
		}
		m.submitting = true
		return tea.Batch(cmd, m.submit(in))

	case huh.StateAborted:
		return navigate(ListRoute())
	}
	return cmd
}

// parseItemForm builds a payload from raw field buffers, collecting
// every violation rather than stopping at the first. The message order
// is fixed: name, quantity, price.
func parseItemForm(name, description, quantity, price string) (catalog.ItemInput, []string) {
	var violations []string
	in := catalog.ItemInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}

	if in.Name == "" {
		violations = append(violations, "Name is required")
	}

	qRaw := strings.TrimSpace(quantity)
	if q, err := strconv.ParseFloat(qRaw, 64); qRaw == "" || err != nil {
		violations = append(violations, "Quantity is required")
	} else if q != float64(int64(q)) {
		violations = append(violations, "Quantity must be an integer")
	} else if q < 0 {
		violations = append(violations, "Quantity must be >= 0")
	} else {
		in.Quantity = int(q)
	}

	pRaw := strings.TrimSpace(price)
	if p, err := strconv.ParseFloat(pRaw, 64); pRaw == "" || err != nil {
		violations = append(violations, "Price is required")
	} else if p < 0 {
		violations = append(violations, "Price must be >= 0")
	} else {
		in.Price = p
	}

	return in, violations
}

// View renders the form page.
func (m *FormModel) View() string {
	var b strings.Builder

	title := "New Item"
	if m.id != "" {
		title = "Edit Item " + m.id
	}
	b.WriteString(m.styles.SectionName.Render(title))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Dim.Render("Loading item…"))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	if m.submitting {
		b.WriteString(m.styles.Dim.Render("Saving…"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter submit · esc cancel"))
	return b.String()
}
