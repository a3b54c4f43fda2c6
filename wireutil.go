package amqp

import "github.com/rabbitbridge/amqp-core/internal/wire"

// tableWriter encodes t as a bare field table body (no length prefix),
// used by AMQPlainAuth.Response which reuses the table value-encoding but
// is not itself framed as a table argument.
func tableWriter(t Table) string {
	w := wire.NewWriter()
	for k, v := range t {
		_ = w.WriteShortString(k)
		_ = w.WriteValue(v)
	}
	return string(w.Bytes())
}
