// Package script compiles Lua sources into native callbacks.
//
// A script evaluates to a Lua function. The function receives the context
// object of the callback as a table followed by the callback arguments, and
// its first result is converted back to a native value.
//
//	return function(ctx, value)
//	  if ctx.datasetIndex == 0 then return "red" end
//	  return "#666"
//	end
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chartcfg/internal/native"
)

// DefaultTimeout bounds a single callback invocation.
const DefaultTimeout = 100 * time.Millisecond

var (
	// ErrCompile is returned when a source does not compile to a function.
	ErrCompile = errors.New("script compile error")

	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")
)

// State is a sandboxed Lua interpreter shared by the callbacks compiled
// from it.
//
// gopher-lua's LState is not goroutine-safe, and neither is State: the
// engine invokes callbacks from its single event loop. Callbacks may be
// invoked from within another callback of the same state.
type State struct {
	L *lua.LState

	timeout time.Duration
	logger  zerolog.Logger
	bridge  *Bridge
	depth   int
	closed  bool
}

// Option configures a State.
type Option func(*State)

// WithTimeout sets the maximum duration of one callback invocation.
// Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *State) { s.timeout = d }
}

// WithLogger sets the logger receiving callback failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.logger = l }
}

// NewState creates a sandboxed Lua state.
func NewState(opts ...Option) *State {
	s := &State{
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	sandbox(L)

	s.L = L
	s.bridge = NewBridge(L, s)
	return s
}

// openSafeLibraries opens only the Lua libraries without host access.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// Compile compiles src into a native function. The source is either a
// chunk returning a function or a bare function expression.
func (s *State) Compile(name, src string) (native.Function, error) {
	if s.closed {
		return nil, ErrStateClosed
	}

	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "function") {
		trimmed = "return " + trimmed
	}

	chunk, err := s.L.LoadString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompile, name, err)
	}

	s.L.Push(chunk)
	if err := s.L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompile, name, err)
	}
	result := s.L.Get(-1)
	s.L.Pop(1)

	fn, ok := result.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %s: evaluates to %s, not a function", ErrCompile, name, result.Type())
	}

	return s.wrap(name, fn), nil
}

// Register exposes a native function to scripts as a global.
func (s *State) Register(name string, fn native.Function) {
	if s.closed || fn == nil {
		return
	}
	s.L.SetGlobal(name, s.bridge.goFunction(fn))
}

// Close releases the interpreter. Functions compiled from a closed state
// return undefined.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}

// wrap turns a Lua function into a native function. Failures are logged
// and yield undefined: callbacks never fail towards the engine.
func (s *State) wrap(name string, fn *lua.LFunction) native.Function {
	return func(ctx *native.Object, args ...native.Value) native.Value {
		v, err := s.call(fn, ctx, args...)
		if err != nil {
			s.logger.Warn().Err(err).Str("script", name).Msg("callback failed")
			return native.Undefined()
		}
		return v
	}
}

func (s *State) call(fn *lua.LFunction, ctx *native.Object, args ...native.Value) (native.Value, error) {
	if s.closed {
		return native.Undefined(), ErrStateClosed
	}

	if s.depth == 0 && s.timeout > 0 {
		c, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(c)
		defer s.L.RemoveContext()
	}
	s.depth++
	defer func() { s.depth-- }()

	top := s.L.GetTop()
	s.L.Push(fn)
	if ctx != nil {
		s.L.Push(s.bridge.ToLua(native.ObjectValue(ctx)))
	} else {
		s.L.Push(lua.LNil)
	}
	for _, arg := range args {
		s.L.Push(s.bridge.ToLua(arg))
	}

	if err := s.pcall(len(args) + 1); err != nil {
		s.L.SetTop(top)
		return native.Undefined(), err
	}

	result := s.L.Get(-1)
	s.L.SetTop(top)
	return s.bridge.FromLua(result), nil
}

// pcall calls the function on the stack, recovering from interpreter
// panics.
func (s *State) pcall(nargs int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return s.L.PCall(nargs, 1, nil)
}
