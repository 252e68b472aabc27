package resources

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/schuko/gconf"
)

var figletDirTask sync.Once
var figletDir string

// figletFontDir returns the default font directory of a locally installed
// figlet program, or "" if figlet is not configured.
// The location of the figlet binary has to be configured in the global
// application configuration with key 'figlet'.
//
// We call the binary (with option -I2) instead of guessing the installation
// directory, as distributions put fonts into different places. The binary
// will be called at most once.
func figletFontDir() string {
	figletDirTask.Do(func() {
		figletDir = queryFigletFontDir(gconf.GetString("figlet"))
		tracer().Infof("figlet font directory is %q", figletDir)
	})
	return figletDir
}

func queryFigletFontDir(figlet string) string {
	if figlet == "" {
		tracer().Infof("figlet not configured: key 'figlet' should point to location of figlet binary")
		return ""
	}
	if !filepath.IsAbs(figlet) {
		err := core.Error(core.EINVALID, "figlet binary must point to absolute path: %s", figlet)
		core.UserError(err)
		return ""
	}
	if fi, err := os.Stat(figlet); err != nil || (fi.Mode().Perm()&0100) == 0 {
		err = core.WrapError(err, core.EINVALID,
			"figlet configuration points to an invalid binary: %s", figlet)
		core.UserError(err)
		return ""
	}
	var out bytes.Buffer
	cmd := exec.Command(figlet, "-I2")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		err = core.WrapError(err, core.EINVALID, "cannot query figlet font directory")
		core.UserError(err)
		return ""
	}
	return strings.TrimSpace(out.String())
}
