package validation

import (
	"encoding/json"
	"testing"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"empty", "", true},
		{"four characters", "Bolt", true},
		{"five characters", "Bolts", false},
		{"multibyte counted as runes", "Açaí!", false},
		{"multibyte too short", "Açaí", true},
		{"number", float64(12345), true},
		{"null", nil, true},
		{"object", map[string]any{"first": "Bolts"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ValidateName(tt.input)
			if !tt.wantErr {
				assert.Nil(t, appErr)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, apierrors.ErrCodeInvalidData, appErr.Code)
			assert.Equal(t, apierrors.MsgInvalidName, appErr.Message)
		})
	}

	got, appErr := ParseName("Martelo de Thor")
	require.Nil(t, appErr)
	assert.Equal(t, "Martelo de Thor", got)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int
		wantMsg string
	}{
		{"json float integral", float64(10), 10, ""},
		{"json number", json.Number("3"), 3, ""},
		{"go int", 7, 7, ""},
		{"minimum", 1, 1, ""},
		{"maximum", float64(2147483647), 2147483647, ""},
		{"above int32", float64(3000000000), 0, apierrors.MsgQuantityTooLarge},
		{"huge json number", json.Number("1e12"), 0, apierrors.MsgQuantityTooLarge},
		{"huge go int", int64(1) << 40, 0, apierrors.MsgQuantityTooLarge},
		{"huge uint", uint64(1) << 63, 0, apierrors.MsgQuantityTooLarge},
		{"below int32", float64(-3000000000), 0, apierrors.MsgQuantityTooSmall},
		{"zero", 0, 0, apierrors.MsgQuantityTooSmall},
		{"negative", float64(-2), 0, apierrors.MsgQuantityTooSmall},
		{"numeric string", "5", 0, apierrors.MsgQuantityNotNumber},
		{"text", "string", 0, apierrors.MsgQuantityNotNumber},
		{"null", nil, 0, apierrors.MsgQuantityNotNumber},
		{"bool", true, 0, apierrors.MsgQuantityNotNumber},
		{"fraction", 1.5, 0, apierrors.MsgQuantityNotNumber},
		{"fractional json number", json.Number("2.5"), 0, apierrors.MsgQuantityNotNumber},
		{"negative fraction is a type error first", -0.5, 0, apierrors.MsgQuantityNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, appErr := ParseQuantity(tt.input)
			if tt.wantMsg == "" {
				require.Nil(t, appErr)
				assert.Equal(t, tt.want, got)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, apierrors.ErrCodeInvalidData, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Nil(t, ValidateQuantity(1))
		})
	}
}

func TestParseQuantityKeepsValuesUnchanged(t *testing.T) {
	for _, in := range []any{float64(1e12), json.Number("2147483648"), float64(1e300)} {
		got, appErr := ParseQuantity(in)
		require.NotNil(t, appErr, "%v", in)
		assert.Equal(t, apierrors.MsgQuantityTooLarge, appErr.Message)
		assert.Zero(t, got)
	}
}
