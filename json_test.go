package quantgo

import (
	"encoding/json"
	"testing"

	"github.com/hupe1980/quantgo/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityJSONRoundTrip(t *testing.T) {
	q := Newton.Scale(9.81)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":9.81,"unit":[1,1,-2,0,0,0,0]}`, string(data))

	var back Quantity
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, q, back)
}

func TestQuantityJSONDimensionless(t *testing.T) {
	data, err := json.Marshal(New(5, dimension.Dimensionless))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":5,"unit":[0,0,0,0,0,0,0]}`, string(data))
}

func TestQuantityJSONInvalid(t *testing.T) {
	var q Quantity
	assert.Error(t, json.Unmarshal([]byte(`{"value":"nan"}`), &q))
}

func TestArrayJSONRoundTrip(t *testing.T) {
	a := NewArray([]float64{300, 310}, Kelvin.Dimensions())

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"values":[300,310],"unit":[0,0,0,0,1,0,0]}`, string(data))

	var back Array
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a.Dimensions(), back.Dimensions())
	assert.Equal(t, a.Values(), back.Values())
}
