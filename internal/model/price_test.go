package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNumeric bool
		wantAmount  float64
		wantText    string
		wantErr     bool
	}{
		{
			name:        "Number",
			input:       `6800`,
			wantNumeric: true,
			wantAmount:  6800,
		},
		{
			name:        "Number with fraction",
			input:       `3888.5`,
			wantNumeric: true,
			wantAmount:  3888.5,
		},
		{
			name:     "Inquire text",
			input:    `"請查詢"`,
			wantText: "請查詢",
		},
		{
			name:     "Workbook text price",
			input:    `"$3,888/ 兩天工作坊"`,
			wantText: "$3,888/ 兩天工作坊",
		},
		{
			name:    "Object rejected",
			input:   `{"amount":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.input), &p)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumeric, p.IsNumeric())
			assert.Equal(t, tt.wantAmount, p.Amount())
			assert.Equal(t, tt.wantText, p.Text())
		})
	}
}

func TestPrice_MarshalJSON_RoundTrip(t *testing.T) {
	numeric, err := json.Marshal(NumericPrice(6800))
	require.NoError(t, err)
	assert.Equal(t, `6800`, string(numeric))

	text, err := json.Marshal(TextPrice("請查詢"))
	require.NoError(t, err)
	assert.Equal(t, `"請查詢"`, string(text))
}

func TestPrice_Display(t *testing.T) {
	assert.Equal(t, "HK$6,800", NumericPrice(6800).Display())
	assert.Equal(t, "HK$1,238,000", NumericPrice(1238000).Display())
	assert.Equal(t, "HK$請查詢", TextPrice("請查詢").Display())
}

func TestPrice_DisplayOrInquire(t *testing.T) {
	assert.Equal(t, "HK$6,800", NumericPrice(6800).DisplayOrInquire())
	assert.Equal(t, "請查詢", TextPrice("請查詢").DisplayOrInquire())
	assert.Equal(t, "請查詢", TextPrice("按項目收費").DisplayOrInquire())
}

func TestPrice_Points(t *testing.T) {
	assert.Equal(t, 6800, NumericPrice(6800).Points())
	assert.Equal(t, 3888, NumericPrice(3888.9).Points())
	assert.Equal(t, 0, TextPrice("請查詢").Points())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{6800, "6,800"},
		{12800, "12,800"},
		{1238000, "1,238,000"},
		{3888.5, "3,888.50"},
		{-9800, "-9,800"},
		// The cents rounding carries into the dollars before grouping.
		{6800.999, "6,801"},
		{999.999, "1,000"},
		{1999.994, "1,999.99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount))
	}
}
