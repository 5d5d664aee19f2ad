package CheeseDB

import (
	"fmt"
	"strings"

	"github.com/Kirov7/CheeseDB/data"
	"github.com/Kirov7/CheeseDB/public"
	lua "github.com/yuin/gopher-lua"
)

// Eval runs a Lua script against the catalog and returns the last value it left on the stack.
// The script sees insert, remove, search, count and list.
func (c *Catalog) Eval(script luaScript) (*Cmd, error) {
	if c.L == nil {
		return nil, public.ErrLuaInterpreterDisabled
	}
	defer c.L.SetTop(0)
	if err := c.L.DoString(string(script)); err != nil {
		return nil, err
	}
	if c.L.GetTop() == 0 {
		return &Cmd{Value: nil}, nil
	}
	return &Cmd{Value: fromLValue(c.L.Get(-1), make(map[*lua.LTable]bool))}, nil
}

// fromLValue converts a Lua value to Go. A table reached again through itself converts to nil.
func fromLValue(value lua.LValue, visited map[*lua.LTable]bool) interface{} {
	switch v := value.(type) {
	case lua.LNumber:
		if float64(v) == float64(int64(v)) {
			return int64(v)
		}
		return float64(v)
	case lua.LString:
		return string(v)
	case lua.LBool:
		return bool(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		if v.MaxN() > 0 {
			arr := make([]interface{}, 0, v.MaxN())
			for i := 1; i <= v.MaxN(); i++ {
				arr = append(arr, fromLValue(v.RawGetInt(i), visited))
			}
			return arr
		}
		fields := make(map[string]interface{})
		v.ForEach(func(key, value lua.LValue) {
			fields[key.String()] = fromLValue(value, visited)
		})
		return fields
	default:
		return nil
	}
}

func recordToTable(L *lua.LState, record *data.Record) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("brand", lua.LString(record.Brand))
	t.RawSetString("type", lua.LString(record.Type))
	t.RawSetString("fat", lua.LNumber(record.FatContent))
	t.RawSetString("price", lua.LNumber(record.Price))
	t.RawSetString("state", lua.LString(record.State.String()))
	return t
}

func (c *Catalog) initLuaInterpreter() {
	c.L = lua.NewState()
	c.L.SetGlobal("insert", c.L.NewFunction(func(L *lua.LState) int {
		brand := L.CheckString(1)
		typ := L.CheckString(2)
		fat := L.CheckNumber(3)
		price := L.CheckNumber(4)
		if err := c.Put(brand, typ, float64(fat), float64(price)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	c.L.SetGlobal("remove", c.L.NewFunction(func(L *lua.LState) int {
		brand := L.CheckString(1)
		price := L.CheckNumber(2)
		_, err := c.Remove(brand, float64(price))
		L.Push(lua.LBool(err == nil))
		return 1
	}))

	c.L.SetGlobal("search", c.L.NewFunction(func(L *lua.LState) int {
		brand := L.CheckString(1)
		price := L.CheckNumber(2)
		L.Push(lua.LBool(c.Search(brand, float64(price))))
		return 1
	}))

	c.L.SetGlobal("count", c.L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(c.Len()))
		return 1
	}))

	c.L.SetGlobal("list", c.L.NewFunction(func(L *lua.LState) int {
		records, err := c.ListAll()
		if err != nil {
			L.RaiseError("%v", err)
		}
		t := L.NewTable()
		for _, record := range records {
			t.Append(recordToTable(L, record))
		}
		L.Push(t)
		return 1
	}))
}

func BuildScript(raw ...string) luaScript {
	return luaScript(strings.Join(raw, ""))
}

type Cmd struct {
	Value interface{}
}

func (r *Cmd) AsInt() (int, error) {
	switch v := r.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("result is not an int")
	}
}

func (r *Cmd) AsFloat() (float64, error) {
	switch v := r.Value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("result is not a number")
	}
}

func (r *Cmd) AsString() (string, error) {
	v, ok := r.Value.(string)
	if !ok {
		return "", fmt.Errorf("result is not a string")
	}
	return v, nil
}

func (r *Cmd) AsBool() (bool, error) {
	v, ok := r.Value.(bool)
	if !ok {
		return false, fmt.Errorf("result is not a bool")
	}
	return v, nil
}

func (r *Cmd) AsArray() ([]interface{}, error) {
	v, ok := r.Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("result is not an array")
	}
	return v, nil
}

type luaScript string

type LuaScriptBuilder struct {
	scriptParts []string
}

func NewLuaScriptBuilder() *LuaScriptBuilder {
	return &LuaScriptBuilder{}
}

func (b *LuaScriptBuilder) RawCode(code string) *LuaScriptBuilder {
	b.scriptParts = append(b.scriptParts, code)
	return b
}

func (b *LuaScriptBuilder) If(condition string, fn func(builder *LuaScriptBuilder)) *LuaScriptBuilder {
	b.scriptParts = append(b.scriptParts, fmt.Sprintf("if %s then", condition))
	fn(b)
	b.scriptParts = append(b.scriptParts, "end")
	return b
}

func (b *LuaScriptBuilder) Insert(brand, typ string, fat, price float64) *LuaScriptBuilder {
	b.scriptParts = append(b.scriptParts, fmt.Sprintf("insert(%q, %q, %v, %v)", brand, typ, fat, price))
	return b
}

func (b *LuaScriptBuilder) Remove(brand string, price float64) *LuaScriptBuilder {
	b.scriptParts = append(b.scriptParts, fmt.Sprintf("remove(%q, %v)", brand, price))
	return b
}

func (b *LuaScriptBuilder) Return(expr string) *LuaScriptBuilder {
	b.scriptParts = append(b.scriptParts, "return "+expr)
	return b
}

func (b *LuaScriptBuilder) Build() luaScript {
	return luaScript(strings.Join(b.scriptParts, "\n"))
}
