package amqp

// Authentication is a SASL mechanism negotiated during connection.start /
// connection.start-ok (spec.md §4.4 step 2).
type Authentication interface {
	Mechanism() string
	Response() string
}

// PlainAuth implements the SASL PLAIN mechanism.
type PlainAuth struct {
	Username string
	Password string
}

func (a *PlainAuth) Mechanism() string { return "PLAIN" }
func (a *PlainAuth) Response() string {
	return "\x00" + a.Username + "\x00" + a.Password
}

// AMQPlainAuth implements RabbitMQ's AMQPLAIN mechanism: a field table
// with "LOGIN" and "PASSWORD" long-string entries instead of PLAIN's
// NUL-delimited response string.
type AMQPlainAuth struct {
	Username string
	Password string
}

func (a *AMQPlainAuth) Mechanism() string { return "AMQPLAIN" }
func (a *AMQPlainAuth) Response() string {
	w := tableWriter(Table{
		"LOGIN":    a.Username,
		"PASSWORD": a.Password,
	})
	return w
}

// pickSASLMechanism chooses the first client mechanism the server also
// advertises, preserving client preference order.
func pickSASLMechanism(client []Authentication, serverMechanisms []string) (Authentication, bool) {
	offered := make(map[string]bool, len(serverMechanisms))
	for _, m := range serverMechanisms {
		offered[m] = true
	}
	for _, auth := range client {
		if offered[auth.Mechanism()] {
			return auth, true
		}
	}
	return nil, false
}
