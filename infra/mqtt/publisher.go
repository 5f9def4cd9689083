// Package mqtt publishes finished reports to an MQTT broker using Eclipse
// Paho. The tool is a one-shot publisher: it connects, emits, and
// disconnects; there is no subscription side.
package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/gridcost/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Broker     string `json:"broker"`
	ClientID   string `json:"client_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	UseTLS     bool   `json:"use_tls"`
	ClientCert string `json:"client_cert"`
	ClientKey  string `json:"client_key"`
	CABundle   string `json:"ca_bundle"`
	QoS        byte   `json:"qos"`
	Retain     bool   `json:"retain"`
	MaxRetries int    `json:"max_retries"`
	BackoffMS  int    `json:"backoff_ms"`

	TLSConfig *tls.Config `json:"-"`
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher wraps a connected Paho client.
type Publisher struct {
	cli        pahoClient
	qos        byte
	retain     bool
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// NewPublisher connects to the MQTT broker.
func NewPublisher(cfg Config) (*Publisher, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{
		cli:        c,
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.TLSConfig != nil {
		return c.TLSConfig, nil
	}
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caBytes)
	return &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

// Publish sends the payload, retrying with a fixed backoff on failure.
func (p *Publisher) Publish(topic string, payload []byte) error {
	attempts := p.maxRetries + 1
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(p.backoff)
			p.log.Warnf("retrying publish to %s (attempt %d/%d)", topic, i+1, attempts)
		}
		token := p.cli.Publish(topic, p.qos, p.retain, payload)
		token.Wait()
		if err = token.Error(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("publish %s: %w", topic, err)
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
