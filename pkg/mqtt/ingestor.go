// Package mqtt feeds readings published by wireless probes into the same
// ingestion path as the REST API.
package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
)

const (
	DefaultQoS byte = 1

	connectTimeout    = 10 * time.Second
	subscribeTimeout  = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds
)

var (
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrInvalidJSON   = errors.New("invalid reading payload")
	ErrBrokerTimeout = errors.New("broker did not answer in time")
)

type Ingestor struct {
	Haccp            *haccp.HACCP
	RateLimiterStore *haccp.RateLimiterStore
	Topic            string
	QoS              byte

	mu      sync.Mutex
	client  paho.Client
	stopped atomic.Bool
}

func ingestorLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameMqttIngestor)
}

// Ingest decodes one JSON reading and submits it.
func (i *Ingestor) Ingest(payload []byte) error {
	var p haccp.ReadingPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	input, err := p.Reading()
	if err != nil {
		return err
	}
	if err := haccp.ValidateReading(input); err != nil {
		return err
	}

	if !i.RateLimiterStore.Allow(input.UserID) {
		return fmt.Errorf("%w: user %s", ErrRateLimited, input.UserID)
	}

	_, _, err = i.Haccp.Reading.SubmitReading(input)
	return err
}

// HandleMessage is the paho callback. Failures are logged, the broker never
// sees them. Messages arriving after Stop are dropped.
func (i *Ingestor) HandleMessage(_ paho.Client, msg paho.Message) {
	logger := ingestorLogger()

	if i.stopped.Load() {
		logger.Warn("Ingestor stopped, message dropped", zap.String("topic", msg.Topic()))
		return
	}

	if err := i.Ingest(msg.Payload()); err != nil {
		logger.Warn("Ingest failed", zap.String("topic", msg.Topic()), zap.Error(err))
		return
	}
	logger.Debug("Reading ingested", zap.String("topic", msg.Topic()))
}

// Connect opens a client to broker. Subscriptions are restored by the
// OnConnect handler after reconnects.
func Connect(broker, clientID string, onConnect paho.OnConnectHandler) (paho.Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetOnConnectHandler(onConnect).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			ingestorLogger().Warn("Broker connection lost", zap.Error(err))
		})

	client := paho.NewClient(opts)
	if err := wait(client.Connect(), connectTimeout); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, err)
	}
	return client, nil
}

func (i *Ingestor) Subscribe(client paho.Client) error {
	if err := wait(client.Subscribe(i.Topic, i.QoS, i.HandleMessage), subscribeTimeout); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", i.Topic, err)
	}
	ingestorLogger().Info("Subscribed", zap.String("topic", i.Topic), zap.Uint8("qos", i.QoS))
	return nil
}

// Start connects to broker and subscribes on every (re)connect.
func (i *Ingestor) Start(broker, clientID string) error {
	client, err := Connect(broker, clientID, func(c paho.Client) {
		if err := i.Subscribe(c); err != nil {
			ingestorLogger().Error("Subscribe failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.client = client
	i.mu.Unlock()
	return nil
}

// Stop disconnects from the broker and drops any message still delivered
// afterwards. It must run before the database is closed.
func (i *Ingestor) Stop() {
	i.stopped.Store(true)

	i.mu.Lock()
	client := i.client
	i.client = nil
	i.mu.Unlock()

	if client != nil && client.IsConnected() {
		client.Disconnect(disconnectQuiesce)
		ingestorLogger().Info("Disconnected from broker")
	}
}

func wait(token paho.Token, timeout time.Duration) error {
	if !token.WaitTimeout(timeout) {
		return ErrBrokerTimeout
	}
	return token.Error()
}
