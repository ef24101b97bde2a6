package execute

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const luaTimeout = 10 * time.Second

// runLua executes a Lua script in a fresh state. The script receives a
// global data table (shortcut, clipboard, selection, datetime) and must
// define process(data) returning a string.
func runLua(ctx context.Context, code string, env Env) (out string, err error) {
	ctx, cancel := context.WithTimeout(ctx, luaTimeout)
	defer cancel()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	data := L.NewTable()
	data.RawSetString("shortcut", lua.LString(env.Shortcut))
	data.RawSetString("clipboard", lua.LString(env.Clipboard))
	data.RawSetString("selection", lua.LString(env.Selection))
	data.RawSetString("datetime", lua.LString(env.Datetime.Format(time.RFC3339)))
	L.SetGlobal("data", data)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	if err := L.DoString(code); err != nil {
		return "", err
	}

	fn := L.GetGlobal("process")
	if fn == lua.LNil {
		return "", fmt.Errorf("function %q not found", "process")
	}
	if fn.Type() != lua.LTFunction {
		return "", fmt.Errorf("%q is not a function (got %s)", "process", fn.Type())
	}

	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, data); err != nil {
		return "", err
	}

	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsString(ret), nil
}
