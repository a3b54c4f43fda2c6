package amqp

import (
	"testing"

	"github.com/rabbitbridge/amqp-core/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainAuthResponse(t *testing.T) {
	a := &PlainAuth{Username: "guest", Password: "guest"}
	assert.Equal(t, "PLAIN", a.Mechanism())
	assert.Equal(t, "\x00guest\x00guest", a.Response())
}

func TestAMQPlainAuthResponseIsAFieldTable(t *testing.T) {
	a := &AMQPlainAuth{Username: "alice", Password: "s3cret"}
	assert.Equal(t, "AMQPLAIN", a.Mechanism())

	r := wire.NewReader([]byte(a.Response()))
	seen := map[string]string{}
	for r.Remaining() > 0 {
		name, err := r.ReadShortString()
		require.NoError(t, err)
		val, err := r.ReadValue()
		require.NoError(t, err)
		s, ok := val.(string)
		require.True(t, ok, "AMQPLAIN fields are encoded as long strings")
		seen[name] = s
	}
	assert.Equal(t, "alice", seen["LOGIN"])
	assert.Equal(t, "s3cret", seen["PASSWORD"])
}

func TestPickSASLMechanismPrefersClientOrder(t *testing.T) {
	client := []Authentication{
		&AMQPlainAuth{Username: "a", Password: "b"},
		&PlainAuth{Username: "a", Password: "b"},
	}
	auth, ok := pickSASLMechanism(client, []string{"PLAIN", "AMQPLAIN"})
	require.True(t, ok)
	assert.Equal(t, "AMQPLAIN", auth.Mechanism(), "client preference order wins even though the server listed PLAIN first")
}

func TestPickSASLMechanismFallsBackWhenFirstChoiceUnavailable(t *testing.T) {
	client := []Authentication{
		&AMQPlainAuth{Username: "a", Password: "b"},
		&PlainAuth{Username: "a", Password: "b"},
	}
	auth, ok := pickSASLMechanism(client, []string{"PLAIN"})
	require.True(t, ok)
	assert.Equal(t, "PLAIN", auth.Mechanism())
}

func TestPickSASLMechanismFailsWhenNoneShared(t *testing.T) {
	client := []Authentication{&PlainAuth{Username: "a", Password: "b"}}
	_, ok := pickSASLMechanism(client, []string{"CRAM-MD5"})
	assert.False(t, ok)
}
