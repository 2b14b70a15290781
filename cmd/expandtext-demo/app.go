package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/expandtext/cmd/expandtext-demo/internal/config"
	"github.com/go-drift/expandtext/pkg/text"
	"github.com/go-drift/expandtext/pkg/widget"
)

const (
	paneArticle = iota
	paneList
	paneCount
)

const (
	contentX = 2
	contentY = 3
)

// app owns the demo's event loop and the two panes: a single article widget
// and a list whose rows share one recycled widget instance.
type app struct {
	screen    tcell.Screen
	cfg       *config.Resolved
	scheduler *screenScheduler

	pane   int
	status string

	articleHost   *termHost
	articleText   *termTextView
	articleToggle *termToggleView
	article       *widget.ExpandableText

	listHost   *termHost
	listText   *termTextView
	listToggle *termToggleView
	listWidget *widget.ExpandableText
	store      *widget.CollapseStore
	selected   int
}

func newApp(cfg *config.Resolved, pane, selected int) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		screen:    screen,
		cfg:       cfg,
		scheduler: &screenScheduler{screen: screen, interval: cfg.FrameInterval},
		pane:      clampIndex(pane, paneCount),
		selected:  clampIndex(selected, len(listItems)),
		store:     widget.NewCollapseStore(),
	}

	a.articleText = newTermTextView()
	a.articleToggle = &termToggleView{}
	a.articleHost = &termHost{}
	a.article, err = a.buildWidget(a.articleText, a.articleToggle, a.articleHost)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.article.SetOnExpandStateChangeListener(func(isExpanded bool) {
		if isExpanded {
			a.status = "article expanded"
		} else {
			a.status = "article collapsed"
		}
	})

	a.listText = newTermTextView()
	a.listToggle = &termToggleView{}
	a.listHost = &termHost{}
	a.listWidget, err = a.buildWidget(a.listText, a.listToggle, a.listHost)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	a.layoutAll()
	return a, nil
}

func (a *app) buildWidget(tv *termTextView, toggle *termToggleView, host *termHost) (*widget.ExpandableText, error) {
	w, err := widget.New(a.cfg.Widget, widget.Insets{}, text.NewCellMeasurer(), widget.Views{
		Text:      tv,
		Toggle:    toggle,
		Indicator: toggle,
	}, host, a.scheduler)
	if err != nil {
		return nil, err
	}
	host.onLayout = func() {
		measured, err := w.Measure(host.width)
		if err != nil {
			a.status = err.Error()
			return
		}
		host.applyMeasured(measured)
	}
	return w, nil
}

// layoutAll recomputes widget widths from the screen size and rebinds the
// content, forcing a remeasure at the new width.
func (a *app) layoutAll() {
	width, _ := a.screen.Size()
	contentWidth := float64(width - 2*contentX)
	if contentWidth < 1 {
		contentWidth = 1
	}
	a.articleHost.width = contentWidth
	a.listHost.width = contentWidth

	a.article.SetText(articleText)
	a.listWidget.SetTextAt(listItems[a.selected].body, a.store, a.selected)
}

// run drives the event loop until quit and returns the pane and list
// selection to persist.
func (a *app) run() (pane, selected int) {
	defer a.screen.Fini()
	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *frameEvent:
			ev.callback(ev.When())
		case *tcell.EventResize:
			a.screen.Sync()
			a.layoutAll()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return a.pane, a.selected
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// handleKey returns true when the app should quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		a.pane = (a.pane + 1) % paneCount
		return false
	case tcell.KeyEnter:
		a.activeWidget().Toggle()
		return false
	case tcell.KeyUp:
		a.moveSelection(-1)
		return false
	case tcell.KeyDown:
		a.moveSelection(1)
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case '1':
		a.pane = paneArticle
	case '2':
		a.pane = paneList
	case ' ':
		a.activeWidget().Toggle()
	case 'k':
		a.moveSelection(-1)
	case 'j':
		a.moveSelection(1)
	}
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	w, host := a.activeWidget(), a.activeHost()
	if w.InterceptTouch() {
		return
	}
	x, y := ev.Position()
	top := a.widgetTop()
	bottom := top + int(host.Height()) - 1
	if x < contentX || x >= contentX+int(host.width) || y < top || y > bottom {
		return
	}
	if y == bottom && w.ToggleVisible() {
		w.Toggle()
		return
	}
	w.HandleTextClick()
}

func (a *app) moveSelection(delta int) {
	if a.pane != paneList || a.listWidget.IsAnimating() {
		return
	}
	next := a.selected + delta
	if next < 0 || next >= len(listItems) {
		return
	}
	a.selected = next
	a.listWidget.SetTextAt(listItems[next].body, a.store, next)
}

func (a *app) activeWidget() *widget.ExpandableText {
	if a.pane == paneList {
		return a.listWidget
	}
	return a.article
}

func (a *app) activeHost() *termHost {
	if a.pane == paneList {
		return a.listHost
	}
	return a.articleHost
}

// widgetTop is the row where the active pane's widget starts. In the list
// pane the row headers sit above it.
func (a *app) widgetTop() int {
	if a.pane == paneList {
		return contentY + len(listItems) + 1
	}
	return contentY
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	header := "expandtext demo | 1 article | 2 list | enter/space toggle | q quit"
	drawString(a.screen, 0, 0, width, header, tcell.StyleDefault.Reverse(true))

	w, host, tv, toggle := a.article, a.articleHost, a.articleText, a.articleToggle
	if a.pane == paneList {
		w, host, tv, toggle = a.listWidget, a.listHost, a.listText, a.listToggle
		a.drawListHeaders(width)
	} else {
		drawString(a.screen, contentX, contentY-1, width, "Article", tcell.StyleDefault.Bold(true))
	}

	top := a.widgetTop()
	if host.Visible() {
		tv.draw(a.screen, contentX, top, int(host.width))
		if toggle.Visible() {
			toggle.draw(a.screen, contentX, top+int(host.Height())-1, int(host.width))
		}
	}

	state := "collapsed"
	if !w.IsCollapsed() {
		state = "expanded"
	}
	if w.IsAnimating() {
		state += " (animating)"
	}
	footer := fmt.Sprintf("%s | %s", state, a.status)
	drawString(a.screen, 0, height-1, width, footer, tcell.StyleDefault.Dim(true))

	a.screen.Show()
	host.dirty = false
}

func (a *app) drawListHeaders(width int) {
	drawString(a.screen, contentX, contentY-1, width, "Notes (j/k select)", tcell.StyleDefault.Bold(true))
	for i, item := range listItems {
		style := tcell.StyleDefault
		marker := "  "
		if i == a.selected {
			style = style.Bold(true)
			marker = "> "
		}
		state := "+"
		if !a.store.Get(i) {
			state = "-"
		}
		drawString(a.screen, contentX, contentY+i, width, marker+state+" "+item.title, style)
	}
}

func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
