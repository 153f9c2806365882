package tui

import "testing"

func TestBannerLifecycle(t *testing.T) {
	var b Banner
	if b.Status() != StatusIdle {
		t.Fatalf("zero banner status = %v, want idle", b.Status())
	}

	b = b.Submit()
	if b.Status() != StatusSubmitting {
		t.Fatalf("after Submit status = %v", b.Status())
	}
	if !b.Busy() {
		t.Error("submitting banner must report busy")
	}

	b, cmd := b.Succeed("Care logged successfully!")
	if b.Status() != StatusSuccess {
		t.Fatalf("after Succeed status = %v", b.Status())
	}
	if b.Message() != "Care logged successfully!" {
		t.Errorf("message = %q", b.Message())
	}
	if cmd == nil {
		t.Error("success must schedule an expiry")
	}
	if b.Busy() {
		t.Error("success banner is not busy")
	}
}

func TestBannerFailureSticks(t *testing.T) {
	var b Banner
	b = b.Submit()
	b = b.Fail("Failed to log care. Please try again.")

	if b.Status() != StatusFailed {
		t.Fatalf("status = %v, want failed", b.Status())
	}
	if b.Message() != "Failed to log care. Please try again." {
		t.Errorf("message = %q", b.Message())
	}

	// a failure has no timer; only an explicit Clear or a retry dismisses it
	b = b.Expire(bannerExpiredMsg{seq: 99})
	if b.Status() != StatusFailed {
		t.Error("expiry must not dismiss a failure")
	}

	b = b.Clear()
	if b.Status() != StatusIdle || b.Message() != "" {
		t.Errorf("after Clear: status=%v message=%q", b.Status(), b.Message())
	}
}

func TestBannerExpiryIsSeqGuarded(t *testing.T) {
	var b Banner
	b, _ = b.Succeed("first")
	stale := b

	// a newer success supersedes the first; the first timer must not fire
	b, _ = b.Succeed("second")
	b = b.Expire(bannerExpiredMsg{seq: stale.seq})
	if b.Status() != StatusSuccess || b.Message() != "second" {
		t.Errorf("stale expiry dismissed the current banner: status=%v message=%q", b.Status(), b.Message())
	}

	// the matching timer does dismiss it
	b = b.Expire(bannerExpiredMsg{seq: b.seq})
	if b.Status() != StatusIdle {
		t.Errorf("matching expiry did not dismiss: %v", b.Status())
	}
}

func TestBannerSubmitClearsPriorOutcome(t *testing.T) {
	var b Banner
	b = b.Fail("bad")
	b = b.Submit()
	if b.Message() != "" {
		t.Errorf("Submit must clear the prior message, got %q", b.Message())
	}
}
