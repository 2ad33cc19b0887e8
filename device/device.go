// SPDX-License-Identifier: EPL-2.0

// Package device is a small registry of named audio devices keyed by an
// identifier string. It stores names only; it never opens or enumerates
// hardware.
package device

import "sync"

// Device is a handle to an audio device.
type Device struct {
	Name string
}

// Entry pairs a device with the identifier it was registered under.
type Entry struct {
	ID     string
	Device Device
}

// Handler keeps devices in insertion order. Identifiers are not required to
// be unique; Lookup returns the first match.
type Handler struct {
	entries []Entry

	mtx *sync.Mutex
}

func NewHandler() *Handler {
	return &Handler{
		mtx: &sync.Mutex{},
	}
}

func (h *Handler) Add(id string, dev Device) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.entries = append(h.entries, Entry{ID: id, Device: dev})
}

// Devices returns a copy of every entry in insertion order.
func (h *Handler) Devices() []Entry {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *Handler) Lookup(id string) (Device, bool) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e.Device, true
		}
	}
	return Device{}, false
}

func (h *Handler) Len() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return len(h.entries)
}
