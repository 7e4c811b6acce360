package esmodel

import "sync/atomic"

var requiredChecksDisabled atomic.Bool

// ChecksHandle restores the required-property check setting that was active
// before DisableRequiredChecks was called. Use it with defer:
//
//	h := esmodel.DisableRequiredChecks(true)
//	defer h.Close()
type ChecksHandle struct {
	prev   bool
	closed atomic.Bool
}

// DisableRequiredChecks switches required-property validation in Build off
// (disable == true) or back on, and returns a handle that restores the
// previous value on Close.
//
// The setting is process-wide. Callers must always Close the handle.
func DisableRequiredChecks(disable bool) *ChecksHandle {
	prev := requiredChecksDisabled.Swap(disable)
	return &ChecksHandle{prev: prev}
}

// Close restores the previous setting. Calling Close more than once has no
// further effect.
func (h *ChecksHandle) Close() error {
	if h == nil || !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	requiredChecksDisabled.Store(h.prev)
	return nil
}

// RequiredChecksEnabled reports whether Build currently validates required
// properties.
func RequiredChecksEnabled() bool { return !requiredChecksDisabled.Load() }
