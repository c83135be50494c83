// Package banner renders the startup banner.
package banner

import "fmt"

const art = `
                 _ _
 __      ____ _ | (_) __ _ _ __
 \ \ /\ / / _` + "`" + ` || | |/ _` + "`" + ` | '_ \
  \ V  V / (_| || | | (_| | | | |
   \_/\_/ \__,_||_|_|\__, |_| |_|
                     |___/
`

// Banner returns the banner with the version line.
func Banner(version string) string {
	return fmt.Sprintf("%s  IBM Model 1/2 word aligner %s\n\n", art, version)
}
