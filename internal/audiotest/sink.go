// SPDX-License-Identifier: EPL-2.0

package audiotest

import "errors"

// ErrSinkClosed is returned by FailingWriter once its budget is spent.
var ErrSinkClosed = errors.New("audiotest: sink closed")

// FailingWriter accepts Limit bytes and then fails every write with Err
// (ErrSinkClosed when Err is nil). A write that crosses the limit is
// partially accepted.
type FailingWriter struct {
	Limit   int
	Err     error
	Written []byte
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - len(w.Written)
	if room >= len(p) {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}

	room = max(room, 0)
	w.Written = append(w.Written, p[:room]...)

	err := w.Err
	if err == nil {
		err = ErrSinkClosed
	}
	return room, err
}
