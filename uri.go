package amqp

import (
	"net"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const (
	defaultAMQPPort  = 5672
	defaultAMQPSPort = 5671
)

// URI represents a parsed AMQP connection string, spec.md §6:
//
//	amqp[s]://[user[:password]@]host[:port][/vhost]
type URI struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
	Vhost    string
}

// ParseURI parses an AMQP URI, applying the defaults spec.md §6 lists:
// user/password guest/guest, port 5672/5671, vhost "/".
func ParseURI(uri string) (URI, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return URI{}, errors.Wrap(err, "amqp: invalid URI")
	}

	me := URI{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Username: "guest",
		Password: "guest",
		Vhost:    "/",
	}

	switch me.Scheme {
	case "amqp":
		me.Port = defaultAMQPPort
	case "amqps":
		me.Port = defaultAMQPSPort
	default:
		return URI{}, errors.Errorf("amqp: unsupported scheme %q", u.Scheme)
	}

	if u.User != nil {
		me.Username = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			me.Password = pw
		}
	}

	if port := u.Port(); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return URI{}, errors.Wrap(err, "amqp: invalid port")
		}
		me.Port = p
	}

	// The vhost is everything after the first slash, URL-decoded as-is; a
	// bare "/" (the default) stays a literal single slash rather than
	// being treated as "no vhost given".
	if u.Path != "" && u.Path != "/" {
		vhost, err := url.PathUnescape(u.Path[1:])
		if err != nil {
			return URI{}, errors.Wrap(err, "amqp: invalid vhost")
		}
		me.Vhost = vhost
	} else if u.Path == "" {
		me.Vhost = "/"
	}

	return me, nil
}

// Address returns the host:port pair a Dialer should connect to.
func (u URI) Address() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

// PlainAuth builds the default SASL PLAIN credential from this URI.
func (u URI) PlainAuth() Authentication {
	return &PlainAuth{Username: u.Username, Password: u.Password}
}

// String renders the URI back out, masking the password.
func (u URI) String() string {
	return u.Scheme + "://" + u.Username + ":***@" + u.Address() + "/" + u.Vhost
}
