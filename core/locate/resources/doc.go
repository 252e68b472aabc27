/*
Package resources resolves FIGfonts for an application.

As resource loading may be a time-consuming task, some functions in this
package will work in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed.

Fonts are searched for in the following order:

   1. the global font registry
   2. fonts packaged with this module
   3. the directory configured as 'font-dir'
   4. the font directory of a locally installed figlet binary (key 'figlet')

Fonts loaded from one of the locations 2.–4. are stored in the global
registry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'figtype.resources'.
func tracer() tracing.Trace {
	return tracing.Select("figtype.resources")
}
