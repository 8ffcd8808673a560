package tui

import "strings"

// FooterModel renders the status and the key help.
type FooterModel struct {
	keymap    KeyMap
	paused    bool
	replaying bool
	done      bool
	err       bool
	width     int
}

func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{keymap: km}
}

func (f *FooterModel) SetWidth(w int) { f.width = w }
func (f *FooterModel) SetPaused(p bool) { f.paused = p }
func (f *FooterModel) SetReplaying(r bool) { f.replaying = r }
func (f *FooterModel) SetDone(d bool) { f.done = d }
func (f *FooterModel) SetError(e bool) { f.err = e }

func (f FooterModel) status() string {
	switch {
	case f.err:
		return statusErrorStyle.Render("Error")
	case f.paused:
		return statusPausedStyle.Render("Paused")
	case f.replaying:
		return statusRunningStyle.Render("Replaying")
	case f.done:
		return statusDoneStyle.Render("Done")
	}
	return statusRunningStyle.Render("Running")
}

func (f FooterModel) View() string {
	parts := []string{" " + f.status()}
	for _, b := range f.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, footerDescStyle.Render("  •  "))
}
