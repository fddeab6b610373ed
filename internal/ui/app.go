package ui

// Root model: owns exactly one mounted view and routes between them.

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// navigateMsg asks the app to mount the view for a route.
type navigateMsg struct {
	route Route
}

func navigate(route Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: route} }
}

// viewSeq hands out instance tokens so a completion from a view that
// has since been unmounted (or a reload that has been superseded) can
// be recognized and dropped. Only ever touched from the program's
// update loop.
var viewSeq int64

func nextGen() int64 {
	viewSeq++
	return viewSeq
}

// App is the root console model.
type App struct {
	svc    Service
	styles Styles

	width  int
	height int

	route Route
	list  *ListModel
	form  *FormModel

	defaultThreshold int
}

// NewApp creates the console rooted at the given route.
func NewApp(svc Service, styles Styles, initial Route, defaultThreshold int) *App {
	return &App{
		svc:              svc,
		styles:           styles,
		route:            initial,
		defaultThreshold: defaultThreshold,
	}
}

// mount replaces the active view with a fresh one for the route. The
// previous view's state is discarded entirely; views never share state.
func (a *App) mount(route Route) tea.Cmd {
	a.route = route
	a.list = nil
	a.form = nil
	switch route.Kind {
	case RouteCreate:
		a.form = NewFormModel(a.svc, a.styles, "")
		return a.form.Init()
	case RouteEdit:
		a.form = NewFormModel(a.svc, a.styles, route.ItemID)
		return a.form.Init()
	default:
		a.list = NewListModel(a.svc, a.styles, a.defaultThreshold)
		return a.list.Init()
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.mount(a.route)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case navigateMsg:
		return a, a.mount(msg.route)
	}

	if a.form != nil {
		cmd := a.form.Update(msg)
		return a, cmd
	}
	if a.list != nil {
		cmd := a.list.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	title := a.styles.Title.Render("stockdeck") +
		a.styles.Dim.Render(" "+a.route.String())

	var body string
	switch {
	case a.form != nil:
		body = a.form.View()
	case a.list != nil:
		body = a.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}
