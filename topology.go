package amqp

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Topology is a declarative description of the exchanges, queues and
// bindings a channel should provision, the way operators hand RabbitMQ a
// definitions file instead of scripting each declare call by hand. It is
// decoded from YAML/JSON with the ecosystem's usual tags so a deployment
// can check its broker layout into source control.
type Topology struct {
	Exchanges []Exchange `yaml:"exchanges,omitempty" json:"exchanges,omitempty"`
	Queues    []Queue    `yaml:"queues,omitempty" json:"queues,omitempty"`
	Bindings  []Binding  `yaml:"bindings,omitempty" json:"bindings,omitempty"`
}

type Exchange struct {
	Name       string `yaml:"name" json:"name"`
	Type       string `yaml:"type" json:"type"`
	Durable    bool   `yaml:"durable,omitempty" json:"durable,omitempty"`
	AutoDelete bool   `yaml:"autoDelete,omitempty" json:"autoDelete,omitempty"`
	Internal   bool   `yaml:"internal,omitempty" json:"internal,omitempty"`
	Arguments  Table  `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

type Queue struct {
	Name       string `yaml:"name" json:"name"`
	Durable    bool   `yaml:"durable,omitempty" json:"durable,omitempty"`
	Exclusive  bool   `yaml:"exclusive,omitempty" json:"exclusive,omitempty"`
	AutoDelete bool   `yaml:"autoDelete,omitempty" json:"autoDelete,omitempty"`
	Arguments  Table  `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

type Binding struct {
	Queue      string `yaml:"queue" json:"queue"`
	Exchange   string `yaml:"exchange" json:"exchange"`
	RoutingKey string `yaml:"routingKey" json:"routingKey"`
	Arguments  Table  `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// LoadTopology reads a YAML topology definition from path, the format
// operators already use for RabbitMQ definitions exports.
func LoadTopology(path string) (Topology, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, errors.Wrap(err, "amqp: read topology")
	}
	var t Topology
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Topology{}, errors.Wrap(err, "amqp: parse topology")
	}
	return t, nil
}

// ApplyTopology declares every exchange and queue in t and wires up its
// bindings. It issues every declare/bind call up front, in order — the
// channel's own synchronous gating (spec.md §4.5) serializes them onto the
// wire one reply at a time, in the same exchanges-then-queues-then-bindings
// order they were submitted, so ApplyTopology itself no longer has to chain
// each done callback into the next call. done fires once every step has
// resolved, with the first error seen, if any.
func (ch *Channel) ApplyTopology(t Topology, done func(error)) {
	remaining := len(t.Exchanges) + len(t.Queues) + len(t.Bindings)
	if remaining == 0 {
		if done != nil {
			done(nil)
		}
		return
	}

	var firstErr error
	complete := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
		remaining--
		if remaining == 0 && done != nil {
			done(firstErr)
		}
	}

	for _, e := range t.Exchanges {
		if err := ch.ExchangeDeclare(e.Name, e.Type, e.Durable, e.AutoDelete, e.Internal, false, e.Arguments, complete); err != nil {
			complete(err)
		}
	}
	for _, q := range t.Queues {
		if err := ch.QueueDeclare(q.Name, q.Durable, q.AutoDelete, q.Exclusive, false, q.Arguments, func(_ QueueState, err error) { complete(err) }); err != nil {
			complete(err)
		}
	}
	for _, b := range t.Bindings {
		if err := ch.QueueBind(b.Queue, b.Exchange, b.RoutingKey, false, b.Arguments, complete); err != nil {
			complete(err)
		}
	}
}
