package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nf/w4go/sprite"
	"github.com/nf/w4go/w4"
)

// termView previews sprites in the terminal, beside the log.
type termView struct {
	palette w4.Palette
	out     string

	sprites *tview.TextView
	log     *tview.TextView
	state   *tview.TextView
	cols    *tview.Flex
	rows    *tview.Flex
	app     *tview.Application
}

func newTermView(p w4.Palette, out string) *termView {
	v := &termView{
		palette: p,
		out:     out,
		sprites: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
		log: tview.NewTextView().
			SetMaxLines(1000),
		state: tview.NewTextView().
			SetWrap(false),
		cols: tview.NewFlex(),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}
	v.log.SetChangedFunc(func() { v.app.Draw() })
	v.sprites.SetBackgroundColor(tcell.ColorBlack)
	v.state.SetTextColor(tcell.ColorBlack)
	v.state.SetBackgroundColor(tcell.ColorDarkGrey)
	v.cols.
		AddItem(v.sprites, 0, 2, false).
		AddItem(v.log, 0, 1, false)
	v.rows.
		AddItem(v.cols, 0, 1, false).
		AddItem(v.state, 1, 0, false)
	v.app.SetRoot(v.rows, true)
	v.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			v.app.Stop()
			return nil
		}
		return ev
	})
	return v
}

func (v *termView) Run(updates <-chan []sprite.Named) error {
	log.SetPrefix("")
	log.SetOutput(v.log)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("w4sprite: ")
	}()
	go func() {
		for sprites := range updates {
			v.show(sprites)
		}
	}()
	return v.app.Run()
}

func (v *termView) show(sprites []sprite.Named) {
	var (
		text  = halfBlocks(sheet(sprites, v.palette))
		state = stateMsg(sprites, v.out, time.Now())
	)
	v.app.QueueUpdateDraw(func() {
		v.sprites.SetText(text)
		v.state.SetText(state)
	})
}

func stateMsg(sprites []sprite.Named, out string, t time.Time) string {
	names := make([]string, len(sprites))
	for i, s := range sprites {
		names[i] = fmt.Sprintf("%s %dx%d/%d", s.Name, s.Width, s.Height, s.BPP())
	}
	return fmt.Sprintf("%s %s: %s",
		t.Format("15:04:05"), filepath.Base(out), strings.Join(names, ", "))
}
