package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripValue(t *testing.T, v interface{}) interface{} {
	t.Helper()
	w := NewWriter()
	require.NoError(t, w.WriteValue(v))
	r := NewReader(w.Bytes())
	got, err := r.ReadValue()
	require.NoError(t, err)
	require.Equal(t, 0, r.Remaining())
	return got
}

func TestValueRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"bool-true", true, true},
		{"bool-false", false, false},
		{"int8", int8(-12), int8(-12)},
		{"uint8", uint8(200), uint8(200)},
		{"int16", int16(-3000), int16(-3000)},
		{"uint16", uint16(60000), uint16(60000)},
		{"int32", int32(-70000), int32(-70000)},
		{"uint32", uint32(4000000000), uint32(4000000000)},
		{"int64", int64(-1) << 40, int64(-1) << 40},
		{"uint64", uint64(1) << 40, uint64(1) << 40},
		{"float32", float32(3.5), float32(3.5)},
		{"float64", float64(2.718281828), float64(2.718281828)},
		{"decimal", Decimal{Scale: 2, Value: 12345}, Decimal{Scale: 2, Value: 12345}},
		{"long-string", "hello world", "hello world"},
		{"short-string", ShortStr("hi"), ShortStr("hi")},
		{"array", []interface{}{int32(1), "two", true}, []interface{}{int32(1), "two", true}},
		{"table", Table{"k": int32(1)}, Table{"k": int32(1)}},
		{"void", nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, roundTripValue(t, c.in))
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := time.Unix(1_700_000_000, 0).UTC()
	got := roundTripValue(t, in)
	assert.Equal(t, in, got)
}

func TestShortStringTooLong(t *testing.T) {
	w := NewWriter()
	long := make([]byte, 256)
	err := w.WriteShortString(string(long))
	assert.ErrorIs(t, err, ErrShortStringTooLong)
}

func TestUnknownTypeTagFailsClosed(t *testing.T) {
	r := NewReader([]byte{'?', 0, 0})
	_, err := r.ReadValue()
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, ce.Err, ErrUnknownType)
}

func TestTableRoundTripSizeAccounting(t *testing.T) {
	tbl := Table{
		"a": int32(7),
		"b": "value",
		"c": Table{"nested": true},
	}
	w := NewWriter()
	require.NoError(t, w.WriteTable(tbl))

	r := NewReader(w.Bytes())
	got, err := r.ReadTable()
	require.NoError(t, err)
	assert.Equal(t, tbl, got)

	// size(t) must equal the byte count of encode(t): re-encoding the
	// decoded table reproduces the same length.
	w2 := NewWriter()
	require.NoError(t, w2.WriteTable(got))
	assert.Equal(t, w.Len(), w2.Len())
}

func TestArrayRoundTrip(t *testing.T) {
	arr := []interface{}{int32(1), int32(2), "three"}
	w := NewWriter()
	require.NoError(t, w.WriteArray(arr))
	r := NewReader(w.Bytes())
	got, err := r.ReadArray()
	require.NoError(t, err)
	assert.Equal(t, arr, got)
}
