package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnmarshalScalars(t *testing.T) {
	var body struct {
		Name   Text `json:"name"`
		Phone  Text `json:"phone"`
		Flag   Text `json:"flag"`
		Empty  Text `json:"empty"`
		Absent Text `json:"absent"`
	}

	err := json.Unmarshal([]byte(`{"name":"  Asha  ","phone":9876543210,"flag":true,"empty":null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, Text("  Asha  "), body.Name)
	assert.Equal(t, "Asha", body.Name.Trimmed())
	assert.Equal(t, Text("9876543210"), body.Phone)
	assert.Equal(t, Text("true"), body.Flag)
	assert.Equal(t, Text(""), body.Empty)
	assert.Equal(t, Text(""), body.Absent)
}

func TestTextRejectsObjectsAndArrays(t *testing.T) {
	var body struct {
		Name Text `json:"name"`
	}

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"name":{"first":"A"}}`), &body), ErrNotScalar)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"name":["A"]}`), &body), ErrNotScalar)
}

func TestTextNumbersUseShortestForm(t *testing.T) {
	for literal, want := range map[string]Text{
		`5`:       "5",
		`5.0`:     "5",
		`1e3`:     "1000",
		`-0`:      "0",
		`12.50`:   "12.5",
		`1.5e-7`:  "1.5e-7",
		`1e21`:    "1e+21",
		`0.00001`: "0.00001",
		`1e400`:   "Infinity",
		`-1e400`:  "-Infinity",
	} {
		var got Text
		require.NoError(t, json.Unmarshal([]byte(literal), &got), literal)
		assert.Equal(t, want, got, literal)
	}
}

func TestOptionalFromText(t *testing.T) {
	assert.False(t, OptionalFromText("").IsPresent())
	assert.False(t, OptionalFromText("   ").IsPresent())

	v := OptionalFromText("  a@b.co ")
	assert.True(t, v.IsPresent())
	assert.Equal(t, "a@b.co", v.OrElse(""))
}

func TestOptionalTextSQL(t *testing.T) {
	v, err := None().Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Some("x").Value()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	var o OptionalText
	require.NoError(t, o.Scan(nil))
	assert.False(t, o.IsPresent())

	require.NoError(t, o.Scan([]byte("St. Mary")))
	assert.Equal(t, "St. Mary", o.OrElse(""))

	assert.Error(t, o.Scan(42))
}

func TestOptionalTextJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A OptionalText `json:"a"`
		B OptionalText `json:"b"`
	}{A: Some("x"), B: None()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))

	var in struct {
		A OptionalText `json:"a"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":" y "}`), &in))
	assert.Equal(t, "y", in.A.OrElse(""))
}

func TestFormatCreatedAt(t *testing.T) {
	ts := time.Date(2024, 6, 1, 9, 30, 5, 123_000_000, time.FixedZone("IST", 5*3600+1800))
	assert.Equal(t, "2024-06-01T04:00:05.123Z", FormatCreatedAt(ts))
}
