package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValueIsEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Text("").IsEmpty(), "empty text is still a text cell once tagged")
	assert.False(t, Number(0).IsEmpty(), "numeric zero is a value")
	assert.False(t, Bool(false).IsEmpty(), "false is a value")
}

func TestCellValueJSONRoundTrip(t *testing.T) {
	values := []CellValue{
		Empty(),
		Text("hello"),
		Text(""),
		Text("123"),
		Number(3),
		Number(-12.5),
		Number(0),
		Bool(true),
		Bool(false),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got CellValue
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got, "round-trip of %s", string(data))
	}
}

func TestCellValueJSONForm(t *testing.T) {
	data, err := json.Marshal(Number(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"number","v":3}`, string(data))

	data, err = json.Marshal(Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"empty"}`, string(data))
}

func TestCellValueUnmarshalRejectsUnknownTag(t *testing.T) {
	var v CellValue
	err := json.Unmarshal([]byte(`{"t":"date","v":"2024-01-01"}`), &v)
	require.Error(t, err)
}

func TestCellValueString(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "hi", Text("hi").String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "true", Bool(true).String())
}
