package resolver

import "slices"

// Ref: https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects
var builtinGlobals = []string{
	// Value properties
	"globalThis", "Infinity", "NaN", "undefined",
	// Function properties
	"eval", "isFinite", "isNaN", "parseFloat", "parseInt",
	"decodeURI", "decodeURIComponent", "encodeURI", "encodeURIComponent", "escape", "unescape",
	// Fundamental objects
	"Object", "Function", "Boolean", "Symbol",
	// Error objects
	"Error", "AggregateError", "EvalError", "RangeError", "ReferenceError", "SyntaxError", "TypeError", "URIError",
	// Numbers and dates
	"Number", "BigInt", "Math", "Date",
	// Text processing
	"String", "RegExp",
	// Collections
	"Array", "Int8Array", "Uint8Array", "Uint8ClampedArray", "Int16Array", "Uint16Array", "Int32Array",
	"Uint32Array", "BigInt64Array", "BigUint64Array", "Float32Array", "Float64Array",
	"Map", "Set", "WeakMap", "WeakSet", "WeakRef", "FinalizationRegistry",
	// Structured data
	"ArrayBuffer", "SharedArrayBuffer", "DataView", "Atomics", "JSON",
	// Control abstraction
	"Promise", "Iterator",
	// Reflection
	"Reflect", "Proxy",
	// Internationalization
	"Intl",
}

// Host objects found in both browsers and Node.js.
var hostGlobals = []string{
	"console", "setTimeout", "clearTimeout", "setInterval", "clearInterval", "queueMicrotask",
	"structuredClone", "atob", "btoa", "fetch", "URL", "URLSearchParams", "TextEncoder", "TextDecoder",
	"AbortController", "AbortSignal", "Event", "EventTarget",
}

// IsBuiltinGlobal reports whether sym is predeclared by the default global
// environment.
func IsBuiltinGlobal(sym string) bool {
	return slices.Contains(builtinGlobals, sym) || slices.Contains(hostGlobals, sym)
}

// DefaultGlobals returns the names predeclared unless disabled.
func DefaultGlobals() []string {
	return slices.Concat(builtinGlobals, hostGlobals)
}
