package utils

import (
	"runtime"
	"strings"
)

// GetCallerFunctionName retrieves the name of the calling function.
// skip determines how many stack frames to ascend.
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return "<unknown>"
	}
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "<unknown>"
	}
	return shortFuncName(fn.Name())
}

// shortFuncName strips the package path and receiver from a fully
// qualified function name: "a/b.(*T).Method" becomes "Method".
func shortFuncName(full string) string {
	if lastDotIndex := strings.LastIndexByte(full, '.'); lastDotIndex != -1 {
		return full[lastDotIndex+1:]
	}
	return full
}
