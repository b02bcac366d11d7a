package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type probe struct{}

func (probe) whoAmI() string { return GetCallerFunctionName(2) }

func TestGetCallerFunctionName(t *testing.T) {
	assert.Equal(t, "whoAmI", probe{}.whoAmI())
	assert.Equal(t, "<unknown>", GetCallerFunctionName(1000))
}

func TestShortFuncName(t *testing.T) {
	assert.Equal(t, "Method", shortFuncName("github.com/narender/store-manager/x.(*T).Method"))
	assert.Equal(t, "plain", shortFuncName("plain"))
}
