/*
Package option implements optional values with pattern-style matching.

FIGfont headers carry some integer fields which may be missing altogether
(print direction, full layout, code-tag count). An absent field is something
different than a zero value, and option.Int64T keeps that distinction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figtype.font'.
func tracer() tracing.Trace {
	return tracing.Select("figtype.font")
}
