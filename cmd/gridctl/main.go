// Command gridctl inspects, evaluates and converts grid files.
//
// Files ending in .toml are grid documents with named node fields; any other
// extension is the binary grid layout of package gridio.
//
//	gridctl info surface.toml
//	gridctl eval surface.toml --point 0.1,0.1
//	gridctl product a.toml b.grid -o ab.grid
//	gridctl normalize surface.toml -o unit.toml
//	gridctl encode surface.toml -o surface.grid
//	gridctl decode surface.grid
package main

import "os"

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error(err)
		os.Exit(1)
	}
}
