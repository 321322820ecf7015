package money_test

import (
	"encoding/json"
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orangedata-go/internal/money"
)

func TestFromFloat(t *testing.T) {
	a := money.FromFloat(100.555)
	// Rounds to 2 decimal places
	assert.True(t, a.Decimal().Equal(dec.NewFromFloat(100.56)))
}

func TestFromString(t *testing.T) {
	a, err := money.FromString("123456.78")
	require.NoError(t, err)
	assert.Equal(t, "123456.78", a.String())

	_, err = money.FromString("not-a-number")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	a := money.MustFromString("999.99")
	assert.Equal(t, "999.99", a.String())

	assert.Panics(t, func() {
		money.MustFromString("invalid")
	})
}

func TestExact2DP(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"10", true},
		{"10.5", true},
		{"10.55", true},
		{"10.555", false},
		{"0", true},
		{"-3.21", true},
		{"0.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, money.MustFromString(tt.value).Exact2DP())
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := money.MustFromString("10.50")
	b := money.MustFromString("0.25")

	assert.Equal(t, "10.75", a.Add(b).String())
	assert.Equal(t, "2.63", a.Mul(b).String()) // 2.625 rounds to nearest

	sum := money.Sum([]money.Amount{a, b, money.FromInt(1)})
	assert.Equal(t, "11.75", sum.String())
}

func TestPredicates(t *testing.T) {
	assert.True(t, money.Zero.IsZero())
	assert.False(t, money.MustFromString("0.01").IsZero())
	assert.True(t, money.MustFromString("-1").IsNegative())
	assert.False(t, money.Zero.IsNegative())
	assert.True(t, money.FromInt(5).Equal(money.MustFromString("5.00")))
}

func TestMarshalJSONUnquoted(t *testing.T) {
	data, err := json.Marshal(money.MustFromString("17.45"))
	require.NoError(t, err)
	assert.Equal(t, "17.45", string(data))

	data, err = json.Marshal(money.Zero)
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var a money.Amount
	require.NoError(t, json.Unmarshal([]byte(`17.45`), &a))
	assert.Equal(t, "17.45", a.String())

	require.NoError(t, json.Unmarshal([]byte(`"3.50"`), &a))
	assert.True(t, a.Equal(money.MustFromString("3.5")))
}
