package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	keyboxVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	keybox := NewAppBuild("keybox", "cmd/keybox", keyboxVersion)
	keybox.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			CgoEnabled(false)
	})
	keybox.Variant("windows", "amd64")
	keybox.Variant("linux", "amd64")
	keybox.Variant("linux", "arm64")
	keybox.Variant("darwin", "amd64")
	keybox.Variant("darwin", "arm64")
	b.ImportApp(keybox)

	b.Execute()
}
