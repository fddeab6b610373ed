package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/stockdeck/internal/catalog"
)

// drain runs a command synchronously and feeds its message back into
// the app, following batches, until no commands remain.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		_, cmd := a.Update(msg)
		queue = append(queue, cmd)
	}
}

func TestAppInitMountsList(t *testing.T) {
	f := &fakeService{items: []catalog.Item{{ID: 1, Name: "Widget", Price: 2.5}}}
	a := NewApp(f, DefaultStyles, ListRoute(), 5)

	drain(t, a, a.Init())

	if a.list == nil {
		t.Fatal("list view must be mounted")
	}
	if a.form != nil {
		t.Fatal("form view must not be mounted")
	}
	if !strings.Contains(a.View(), "Widget") {
		t.Error("loaded items must be rendered")
	}
}

func TestAppInitMountsFormForCreateRoute(t *testing.T) {
	f := &fakeService{}
	a := NewApp(f, DefaultStyles, CreateRoute(), 5)

	drain(t, a, a.Init())

	if a.form == nil {
		t.Fatal("form view must be mounted")
	}
	if len(f.getCalls) != 0 {
		t.Error("create route must not fetch an item")
	}
}

func TestAppInitMountsFormForEditRoute(t *testing.T) {
	f := &fakeService{items: []catalog.Item{{ID: 42, Name: "Widget", Quantity: 3, Price: 2.5}}}
	a := NewApp(f, DefaultStyles, EditRoute("42"), 5)

	drain(t, a, a.Init())

	if a.form == nil {
		t.Fatal("form view must be mounted")
	}
	if len(f.getCalls) != 1 || f.getCalls[0] != "42" {
		t.Errorf("get calls = %v, want [42]", f.getCalls)
	}
	if !strings.Contains(a.View(), "Edit Item 42") {
		t.Error("edit title must name the item id")
	}
}

func TestAppNavigationReplacesViewState(t *testing.T) {
	f := &fakeService{items: []catalog.Item{{ID: 1, Name: "Widget", Price: 2.5}}}
	a := NewApp(f, DefaultStyles, ListRoute(), 5)
	drain(t, a, a.Init())

	// Put the list into low-stock mode, then navigate away and back.
	_, cmd := a.Update(keyMsg("l"))
	drain(t, a, cmd)
	if !a.list.lowMode {
		t.Fatal("low-stock mode should be on before navigating")
	}

	_, cmd = a.Update(navigateMsg{route: CreateRoute()})
	drain(t, a, cmd)
	if a.form == nil || a.list != nil {
		t.Fatal("create route must swap the list for a form")
	}

	_, cmd = a.Update(navigateMsg{route: ListRoute()})
	drain(t, a, cmd)
	if a.list == nil || a.form != nil {
		t.Fatal("list route must swap the form for a list")
	}
	if a.list.lowMode {
		t.Error("a remounted list starts fresh, not in low-stock mode")
	}
}

func TestAppEmptyCatalogShowsIndicator(t *testing.T) {
	f := &fakeService{}
	a := NewApp(f, DefaultStyles, ListRoute(), 5)

	drain(t, a, a.Init())

	if !strings.Contains(a.View(), "No items found") {
		t.Error("empty catalog must render the no-items indicator")
	}
}
