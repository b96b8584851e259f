// Package jsmodule exposes the DSN parser to JavaScript as the native module "redi/dsn".
package jsmodule

import (
	js "github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/rediwo/redi-dsn/dsn"
	"github.com/rediwo/redi/modules"
)

// ModuleName is the path scripts pass to require()
const ModuleName = "redi/dsn"

// Auto-register with the redi runtime on import
func init() {
	modules.RegisterModule(ModuleName, func(config modules.ModuleConfig) error {
		Register(config.Registry)
		return nil
	})
}

// Register installs the module into a require registry
func Register(registry *require.Registry) {
	registry.RegisterNativeModule(ModuleName, Load)
}

// Load populates module.exports with parse() and the field name list
func Load(vm *js.Runtime, module *js.Object) {
	exports := vm.NewObject()
	exports.Set("parse", parseFunction(vm))
	exports.Set("fields", fieldsArray(vm))
	module.Set("exports", exports)
}

// parseFunction returns parse(dsn): an object with the six fields, or null when unmatched
func parseFunction(vm *js.Runtime) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 || js.IsUndefined(call.Arguments[0]) || js.IsNull(call.Arguments[0]) {
			panic(vm.NewTypeError("parse() requires a dsn string"))
		}

		p, ok := dsn.Parse(call.Arguments[0].String()).Parsed()
		if !ok {
			return js.Null()
		}

		obj := vm.NewObject()
		for _, f := range dsn.Fields() {
			obj.Set(f.String(), p.Get(f))
		}
		return obj
	}
}

func fieldsArray(vm *js.Runtime) *js.Object {
	names := dsn.FieldNames()
	items := make([]any, len(names))
	for i, name := range names {
		items[i] = name
	}
	return vm.NewArray(items...)
}
