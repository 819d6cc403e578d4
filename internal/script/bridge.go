package script

import (
	"strconv"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Bridge converts between native values and Lua values.
type Bridge struct {
	L     *lua.LState
	state *State
}

// NewBridge creates a bridge for the given Lua state. Lua functions
// converted to native functions run on state.
func NewBridge(L *lua.LState, state *State) *Bridge {
	return &Bridge{L: L, state: state}
}

// ToLua converts a native value to a Lua value. Objects become tables;
// cycles are cut with nil.
func (b *Bridge) ToLua(v native.Value) lua.LValue {
	return b.toLua(v, make(map[*native.Object]bool))
}

func (b *Bridge) toLua(v native.Value, visited map[*native.Object]bool) lua.LValue {
	switch v.Kind() {
	case native.KindBool:
		bv, _ := v.AsBool()
		return lua.LBool(bv)
	case native.KindNumber:
		n, _ := v.AsNumber()
		return lua.LNumber(n)
	case native.KindString:
		s, _ := v.AsString()
		return lua.LString(s)
	case native.KindArray:
		arr, _ := v.AsArray()
		t := b.L.NewTable()
		for i, item := range arr {
			t.RawSetInt(i+1, b.toLua(item, visited))
		}
		return t
	case native.KindObject:
		obj, _ := v.AsObject()
		if visited[obj] {
			return lua.LNil
		}
		visited[obj] = true
		defer delete(visited, obj)
		t := b.L.NewTable()
		for _, name := range obj.Keys() {
			t.RawSetString(name, b.toLua(obj.Value(key.Name(name)), visited))
		}
		return t
	case native.KindFunction:
		fn, _ := v.AsFunction()
		return b.goFunction(fn)
	case native.KindHandle:
		h, _ := v.AsHandle()
		ud := b.L.NewUserData()
		ud.Value = h
		return ud
	default:
		return lua.LNil
	}
}

// FromLua converts a Lua value to a native value. Tables with contiguous
// integer keys from 1 become arrays; other tables become objects.
func (b *Bridge) FromLua(lv lua.LValue) native.Value {
	return b.fromLua(lv, make(map[*lua.LTable]bool))
}

func (b *Bridge) fromLua(lv lua.LValue, visited map[*lua.LTable]bool) native.Value {
	switch v := lv.(type) {
	case lua.LBool:
		return native.Bool(bool(v))
	case lua.LNumber:
		return native.Number(float64(v))
	case lua.LString:
		return native.String(string(v))
	case *lua.LTable:
		if visited[v] {
			return native.Null()
		}
		visited[v] = true
		defer delete(visited, v)
		return b.tableToNative(v, visited)
	case *lua.LFunction:
		return native.FunctionValue(b.state.wrap("function", v))
	case *lua.LUserData:
		return native.HandleValue(v.Value)
	default:
		return native.Undefined()
	}
}

func (b *Bridge) tableToNative(t *lua.LTable, visited map[*lua.LTable]bool) native.Value {
	isArray := true
	maxN, count := 0, 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		if kn, ok := k.(lua.LNumber); ok {
			n := int(kn)
			if float64(n) == float64(kn) && n > 0 {
				if n > maxN {
					maxN = n
				}
				return
			}
		}
		isArray = false
	})

	if isArray && maxN > 0 && count == maxN {
		arr := make([]native.Value, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = b.fromLua(t.RawGetInt(i), visited)
		}
		return native.ArrayOf(arr...)
	}

	obj := native.New()
	t.ForEach(func(k, v lua.LValue) {
		var name string
		switch kv := k.(type) {
		case lua.LString:
			name = string(kv)
		case lua.LNumber:
			name = strconv.FormatFloat(float64(kv), 'f', -1, 64)
		default:
			name = k.String()
		}
		obj.Set(key.Name(name), b.fromLua(v, visited))
	})
	return native.ObjectValue(obj)
}

// goFunction exposes a native function to Lua. Lua arguments are passed as
// the function arguments with a nil context.
func (b *Bridge) goFunction(fn native.Function) *lua.LFunction {
	return b.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		args := make([]native.Value, n)
		for i := 1; i <= n; i++ {
			args[i-1] = b.FromLua(L.Get(i))
		}
		L.Push(b.ToLua(fn(nil, args...)))
		return 1
	})
}
