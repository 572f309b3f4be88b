package quantgo

import (
	"encoding/json"

	"github.com/hupe1980/quantgo/dimension"
)

// The persisted form of a quantity is the raw (value, exponents) pair;
// there is nothing else to version.

type quantityJSON struct {
	Value float64               `json:"value"`
	Unit  [dimension.Count]int8 `json:"unit"`
}

type arrayJSON struct {
	Values []float64             `json:"values"`
	Unit   [dimension.Count]int8 `json:"unit"`
}

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	value, unit := q.RawParts()
	return json.Marshal(quantityJSON{Value: value, Unit: unit})
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw quantityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = FromRawParts(raw.Value, raw.Unit)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrayJSON{Values: a.Values(), Unit: [dimension.Count]int8(a.dims)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Array) UnmarshalJSON(data []byte) error {
	var raw arrayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Array{values: raw.Values, dims: dimension.Dimensions(raw.Unit)}
	return nil
}
