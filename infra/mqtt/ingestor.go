// Package mqtt ingests vehicle telemetry from an MQTT broker. Vehicles
// publish SensorReading JSON on a per-vehicle topic; every decoded reading
// enters the same decision pipeline as an HTTP prediction request.
package mqtt

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/model"
)

// Config defines the connection parameters for the telemetry subscriber.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies the default topic filter and client identity.
func (c *Config) SetDefaults() {
	if c.Topic == "" {
		c.Topic = "fleet/+/telemetry"
	}
	if c.ClientID == "" {
		c.ClientID = "partpilot-ingest"
	}
}

// Validate checks mandatory fields when the ingestor is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker is required when ingest is enabled")
	}
	return nil
}

// pahoClient is the subset of the Paho API the ingestor uses.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Handler consumes one decoded sensor reading.
type Handler func(model.SensorReading)

// Ingestor subscribes to the fleet telemetry topic and feeds readings into
// the decision pipeline. Malformed payloads are logged and dropped.
type Ingestor struct {
	cli    pahoClient
	cfg    Config
	handle Handler
	log    logger.Logger
}

// NewIngestor connects to the broker and subscribes to the telemetry topic.
func NewIngestor(cfg Config, handle Handler, log logger.Logger) (*Ingestor, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	ing := &Ingestor{cli: cli, cfg: cfg, handle: handle, log: log}
	if token := cli.Subscribe(cfg.Topic, cfg.QoS, ing.onMessage); token.Wait() && token.Error() != nil {
		cli.Disconnect(250)
		return nil, fmt.Errorf("mqtt subscribe %s: %w", cfg.Topic, token.Error())
	}
	log.Infof("telemetry ingest subscribed to %s", cfg.Topic)
	return ing, nil
}

func (i *Ingestor) onMessage(_ paho.Client, msg paho.Message) {
	var r model.SensorReading
	if err := json.Unmarshal(msg.Payload(), &r); err != nil {
		i.log.Warnf("telemetry decode on %s: %v", msg.Topic(), err)
		return
	}
	i.handle(r)
}

// Close disconnects from the broker.
func (i *Ingestor) Close() {
	i.cli.Disconnect(250)
}
