// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrUnknownKind = errors.New("unknown sample kind")
)
