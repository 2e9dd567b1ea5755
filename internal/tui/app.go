package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	order      []string
	activePage string
	updates    *Bridge
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the
// default. updates may be nil when nothing publishes snapshots.
func NewApp(updates *Bridge, pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	order := make([]string, 0, len(pages))
	for _, p := range pages {
		pageMap[p.ID()] = p
		order = append(order, p.ID())
	}
	a := &App{
		pages:   pageMap,
		order:   order,
		updates: updates,
	}
	if len(order) > 0 {
		a.activePage = order[0]
	}
	return a
}

// ActivePage returns the ID of the page currently shown.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if p, ok := a.pages[a.activePage]; ok {
		cmds = append(cmds, p.Init())
	}
	if a.updates != nil {
		cmds = append(cmds, a.updates.Wait())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	case StateMsg:
		// Every page tracks the game, not only the visible one, so a page
		// shown later starts from the latest snapshot.
		cmds := a.broadcast(msg)
		if a.updates != nil {
			cmds = append(cmds, a.updates.Wait())
		}
		return a, tea.Batch(cmds...)
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	return a, tea.Batch(cmd, a.navigate(nav))
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

func (a *App) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	var activeNav *PageNav
	for _, id := range a.order {
		cmd, nav := a.pages[id].Update(msg)
		cmds = append(cmds, cmd)
		if id == a.activePage {
			activeNav = nav
		}
	}
	return append(cmds, a.navigate(activeNav))
}

func (a *App) navigate(nav *PageNav) tea.Cmd {
	if nav == nil || nav.PageID == a.activePage {
		return nil
	}
	next, exists := a.pages[nav.PageID]
	if !exists {
		log.Printf("tui: navigation to unknown page %q ignored", nav.PageID)
		return nil
	}
	a.activePage = nav.PageID
	return next.Init()
}
