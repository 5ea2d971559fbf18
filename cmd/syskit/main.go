// Command syskit inspects and manipulates Unix paths with the syskit library.
package main

import "os"

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.printError(err)
		os.Exit(exitCode(err))
	}
}
