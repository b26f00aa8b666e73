package broker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConnected reports that no broker channel is currently live.
var ErrNotConnected = errors.New("not connected to broker")

// State is the connector's position in its reconnect cycle.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

const defaultBackoff = 5 * time.Second

type amqpConnection interface {
	Channel() (*amqp.Channel, error)
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// Connector maintains a single AMQP connection and channel, redialing with a
// fixed backoff whenever the connection drops. Callers never hold a channel
// across a reconnect: they ask for the current one via Channel or WaitChannel.
type Connector struct {
	url     string
	backoff time.Duration
	dial    func(url string) (amqpConnection, error)
	onState func(from, to State)

	mu    sync.Mutex
	conn  amqpConnection
	ch    *amqp.Channel
	state State
}

type ConnectorOption func(*Connector)

func WithBackoff(d time.Duration) ConnectorOption {
	return func(c *Connector) { c.backoff = d }
}

// WithOnStateChange registers a hook invoked on every state transition.
func WithOnStateChange(fn func(from, to State)) ConnectorOption {
	return func(c *Connector) { c.onState = fn }
}

func NewConnector(url string, opts ...ConnectorOption) *Connector {
	c := &Connector{
		url:     url,
		backoff: defaultBackoff,
		state:   StateDisconnected,
		dial: func(url string) (amqpConnection, error) {
			conn, err := amqp.Dial(url)
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the Disconnected -> Connecting -> Connected cycle until ctx is
// cancelled. Connection failures retry forever; the process never crashes
// because the broker is down.
func (c *Connector) Run(ctx context.Context) {
	for {
		c.setState(StateConnecting)

		conn, err := c.dial(c.url)
		if err != nil {
			log.Printf("RabbitMQ connection error: %v (retrying in %s)", err, c.backoff)
			c.setState(StateDisconnected)
			if !c.sleep(ctx) {
				return
			}
			continue
		}

		ch, err := conn.Channel()
		if err == nil {
			err = DeclareTopology(ch)
		}
		if err != nil {
			log.Printf("RabbitMQ setup error: %v (retrying in %s)", err, c.backoff)
			conn.Close()
			c.setState(StateDisconnected)
			if !c.sleep(ctx) {
				return
			}
			continue
		}

		closed := conn.NotifyClose(make(chan *amqp.Error, 1))

		c.mu.Lock()
		c.conn = conn
		c.ch = ch
		c.mu.Unlock()
		c.setState(StateConnected)
		log.Println("Connected to RabbitMQ")

		select {
		case <-ctx.Done():
			c.teardown()
			c.setState(StateDisconnected)
			return
		case amqpErr := <-closed:
			if amqpErr != nil {
				log.Printf("RabbitMQ connection lost: %v", amqpErr)
			}
			c.teardown()
			c.setState(StateDisconnected)
		}
	}
}

// Channel returns the live channel, or false while disconnected.
func (c *Connector) Channel() (*amqp.Channel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected || c.ch == nil {
		return nil, false
	}
	return c.ch, true
}

// WaitChannel blocks until the connector is connected or ctx is cancelled.
func (c *Connector) WaitChannel(ctx context.Context) (*amqp.Channel, error) {
	for {
		if ch, ok := c.Channel(); ok {
			return ch, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connector) setState(to State) {
	c.mu.Lock()
	from := c.state
	c.state = to
	c.mu.Unlock()
	if from != to && c.onState != nil {
		c.onState(from, to)
	}
}

func (c *Connector) teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ch = nil
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// sleep waits out the backoff; false means ctx was cancelled.
func (c *Connector) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.backoff):
		return true
	}
}
