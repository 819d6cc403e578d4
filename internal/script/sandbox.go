package script

import (
	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals load code from the host or escape the environment.
var unsafeGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
	"getfenv",
	"setfenv",
	"collectgarbage",
	"print",
}

// sandbox removes the base functions that reach the host. Scripts only
// see the base, table, string and math libraries.
func sandbox(L *lua.LState) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}
