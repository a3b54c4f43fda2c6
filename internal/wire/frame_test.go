package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodFrameRoundTrip(t *testing.T) {
	payload := EncodeMethod(10, 30, []byte("args"))
	buf := WriteFrame(nil, FrameMethod, 1, payload)

	fr, consumed, err := ParseFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)

	mf, ok := fr.(*MethodFrame)
	require.True(t, ok)
	assert.EqualValues(t, 1, mf.Channel)
	assert.EqualValues(t, 10, mf.ClassID)
	assert.EqualValues(t, 30, mf.MethodID)
	assert.Equal(t, []byte("args"), mf.Payload)
}

func TestHeaderFrameRoundTrip(t *testing.T) {
	payload := EncodeHeader(60, 10000, 0x8000, []byte{0, 5, 't', 'e', 'x', 't', '/'})
	buf := WriteFrame(nil, FrameHeader, 2, payload)

	fr, consumed, err := ParseFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)

	hf, ok := fr.(*HeaderFrame)
	require.True(t, ok)
	assert.EqualValues(t, 60, hf.ClassID)
	assert.EqualValues(t, 10000, hf.BodySize)
	assert.EqualValues(t, 0x8000, hf.PropertyFlags)
}

func TestBodyFrameRoundTrip(t *testing.T) {
	buf := WriteFrame(nil, FrameBody, 2, []byte("payload bytes"))
	fr, consumed, err := ParseFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)
	bf := fr.(*BodyFrame)
	assert.Equal(t, []byte("payload bytes"), bf.Body)
}

func TestHeartbeatFrameRoundTrip(t *testing.T) {
	buf := WriteFrame(nil, FrameHeartbeat, 0, nil)
	fr, consumed, err := ParseFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)
	_, ok := fr.(*HeartbeatFrame)
	assert.True(t, ok)
}

func TestParseFrameNeedsMoreNeverConsumesPartial(t *testing.T) {
	payload := EncodeMethod(10, 30, []byte("hello world"))
	full := WriteFrame(nil, FrameMethod, 1, payload)

	for n := 0; n < len(full); n++ {
		fr, consumed, err := ParseFrame(full[:n])
		assert.Nil(t, fr, "prefix length %d", n)
		assert.Equal(t, 0, consumed, "prefix length %d", n)
		assert.ErrorIs(t, err, ErrNeedMore, "prefix length %d", n)
	}

	fr, consumed, err := ParseFrame(full)
	require.NoError(t, err)
	assert.NotNil(t, fr)
	assert.Equal(t, len(full), consumed)
}

func TestParseFrameBadEndMarkerIsFatal(t *testing.T) {
	payload := EncodeMethod(10, 30, nil)
	buf := WriteFrame(nil, FrameMethod, 1, payload)
	buf[len(buf)-1] = 0x00

	_, _, err := ParseFrame(buf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNeedMore)
}

func TestParseFrameConsumesOnlyOneFrameFromLongerBuffer(t *testing.T) {
	first := WriteFrame(nil, FrameHeartbeat, 0, nil)
	second := WriteFrame(nil, FrameHeartbeat, 0, nil)
	buf := append(append([]byte{}, first...), second...)

	fr, consumed, err := ParseFrame(buf)
	require.NoError(t, err)
	require.NotNil(t, fr)
	assert.Equal(t, len(first), consumed)

	fr2, consumed2, err := ParseFrame(buf[consumed:])
	require.NoError(t, err)
	require.NotNil(t, fr2)
	assert.Equal(t, len(second), consumed2)
}
