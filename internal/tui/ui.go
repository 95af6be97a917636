package tui

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bishoprook/internal/client"
	"bishoprook/internal/domain"
)

const requestTimeout = 10 * time.Second

// UI is the terminal front-end. All game logic lives on the server;
// the UI only issues requests and redraws from the returned state.
type UI struct {
	app    *tview.Application
	api    *client.Client
	board  *tview.Table
	status *tview.TextView
	hist   *tview.TextView

	newBtn   *tview.Button
	playBtn  *tview.Button
	resetBtn *tview.Button

	state *domain.GameState
	busy  bool // one request in flight at a time
}

func New(api *client.Client) *UI {
	u := &UI{
		app: tview.NewApplication(),
		api: api,
	}

	u.board = tview.NewTable()
	u.board.SetBorder(true).SetTitle(" Bishop vs Rook ")

	u.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	u.hist = tview.NewTextView()
	u.hist.SetBorder(true).SetTitle(" Round History ")

	u.newBtn = tview.NewButton("New Game").SetSelectedFunc(u.onNewGame)
	u.playBtn = tview.NewButton("Play Round").SetSelectedFunc(u.onPlayRound)
	u.resetBtn = tview.NewButton("Reset").SetSelectedFunc(u.onReset)

	controls := tview.NewGrid().
		SetColumns(12, 12, 12, -1).
		SetRows(3, 1).
		AddItem(u.newBtn, 0, 0, 1, 1, 0, 0, true).
		AddItem(u.playBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(u.resetBtn, 0, 2, 1, 1, 0, 0, false).
		AddItem(u.status, 1, 0, 1, 4, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-2, 5).
		SetColumns(30, -1).
		AddItem(u.board, 0, 0, 1, 1, 0, 0, false).
		AddItem(u.hist, 0, 1, 1, 1, 0, 0, false).
		AddItem(controls, 1, 0, 1, 2, 0, 0, true)

	u.app.SetRoot(layout, true).EnableMouse(true)
	u.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			u.app.Stop()
			return nil
		}
		return ev
	})

	u.redraw("No game. Press New Game to start.")
	return u
}

func (u *UI) Run() error {
	return u.app.Run()
}

func (u *UI) onNewGame() {
	u.request(func(ctx context.Context) (*domain.GameState, error) {
		return u.api.NewGame(ctx)
	}, "Failed to create new game")
}

func (u *UI) onPlayRound() {
	if !canPlayRound(u.state) {
		return
	}
	id := u.state.GameID
	u.request(func(ctx context.Context) (*domain.GameState, error) {
		return u.api.PlayRound(ctx, id)
	}, "Failed to play round")
}

func (u *UI) onReset() {
	if !canReset(u.state) {
		return
	}
	id := u.state.GameID
	u.request(func(ctx context.Context) (*domain.GameState, error) {
		return u.api.Reset(ctx, id)
	}, "Failed to reset game")
}

// request performs one API call off the UI goroutine and redraws. At most
// one request is in flight; further clicks are ignored until it settles.
// On failure the board keeps its previous state and only the status line
// changes.
func (u *UI) request(call func(context.Context) (*domain.GameState, error), failMsg string) {
	if u.busy {
		return
	}
	u.busy = true
	u.status.SetText("Working...")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		state, err := call(ctx)
		cancel()

		u.app.QueueUpdateDraw(func() {
			u.busy = false
			if err != nil {
				u.redraw(failMsg)
				return
			}
			u.state = state
			u.redraw(statusLine(state))
		})
	}()
}

func (u *UI) redraw(status string) {
	renderBoard(u.board, u.state)
	u.status.SetText(status)
	u.hist.SetText(historyText(u.state))

	setEnabled(u.playBtn, canPlayRound(u.state))
	setEnabled(u.resetBtn, canReset(u.state))
}

func historyText(state *domain.GameState) string {
	if state == nil || len(state.Rounds) == 0 {
		return "No rounds played yet."
	}
	lines := make([]string, 0, len(state.Rounds))
	for _, r := range state.Rounds {
		lines = append(lines, historyLine(r))
	}
	return strings.Join(lines, "\n")
}

func setEnabled(b *tview.Button, enabled bool) {
	if enabled {
		b.SetLabelColor(tview.Styles.InverseTextColor)
		b.SetBackgroundColor(tview.Styles.ContrastBackgroundColor)
	} else {
		b.SetLabelColor(tcell.ColorGray)
		b.SetBackgroundColor(tcell.ColorDarkSlateGray)
	}
}
