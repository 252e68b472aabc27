/*
Package fontregistry manages a registry for loaded FIGfonts.

Fonts are stored under a normalized name (see NormalizeFontname). Clients
asking for a font unknown to the registry will receive a fallback font,
together with an error. The fallback font is compiled into the binary and
renders every printable ASCII and Latin-1 character as itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'figtype.font'
func tracer() tracing.Trace {
	return tracing.Select("figtype.font")
}
