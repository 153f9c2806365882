package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"verdant/internal/constants"
)

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

type bannerExpiredMsg struct {
	seq int
}

// Banner tracks one mutation through idle → submitting → (success | failed)
// → idle. Success and failure are mutually exclusive; success auto-dismisses
// after a fixed delay while failure stays until the next attempt. The seq
// counter ties each expiry timer to the banner generation that scheduled it,
// so a stale timer cannot dismiss a newer message.
type Banner struct {
	status  Status
	message string
	seq     int
}

func (b Banner) Status() Status  { return b.status }
func (b Banner) Message() string { return b.message }

// Busy reports whether a mutation is in flight; the triggering control stays
// disabled while it is.
func (b Banner) Busy() bool { return b.status == StatusSubmitting }

// Submit moves to submitting and clears any prior outcome.
func (b Banner) Submit() Banner {
	b.seq++
	b.status = StatusSubmitting
	b.message = ""
	return b
}

// Succeed records a transient success and schedules its dismissal.
func (b Banner) Succeed(message string) (Banner, tea.Cmd) {
	b.seq++
	b.status = StatusSuccess
	b.message = message
	seq := b.seq
	return b, tea.Tick(constants.BannerTimeout, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

// Fail records a failure. Form input is retained by the caller; the message
// stays until the user retries or cancels.
func (b Banner) Fail(message string) Banner {
	b.seq++
	b.status = StatusFailed
	b.message = message
	return b
}

// Clear resets to idle.
func (b Banner) Clear() Banner {
	b.seq++
	b.status = StatusIdle
	b.message = ""
	return b
}

// Expire handles an auto-dismiss timer firing. Timers from superseded
// banners are ignored.
func (b Banner) Expire(msg bannerExpiredMsg) Banner {
	if msg.seq != b.seq || b.status != StatusSuccess {
		return b
	}
	return b.Clear()
}
