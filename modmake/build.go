package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	lxorVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	lxor := NewAppBuild("lxor", "cmd/lxor", lxorVersion)
	lxor.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", lxorVersion).
			CgoEnabled(false)
	})
	lxor.Variant("windows", "amd64")
	lxor.Variant("linux", "amd64")
	lxor.Variant("linux", "arm64")
	lxor.Variant("darwin", "amd64")
	lxor.Variant("darwin", "arm64")
	b.ImportApp(lxor)

	b.Execute()
}
