// Package mqtt publishes moderation and audit events to an MQTT broker.
// Publishing is optional: with no broker configured every call is a no-op,
// so command handlers can emit events unconditionally.
package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topics for the event streams
const (
	TopicModeration = "geminibot/moderation"
	TopicAudit      = "geminibot/audit"
)

// ModerationEvent describes a ban or unban
type ModerationEvent struct {
	Action   string    `json:"action"` // "ban" | "unban"
	UserID   string    `json:"userId"`
	Username string    `json:"username,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	By       string    `json:"by"`
	At       time.Time `json:"at"`
}

// AuditEvent describes a permission check on a gated command
type AuditEvent struct {
	UserID  string    `json:"userId"`
	Command string    `json:"command"`
	Granted bool      `json:"granted"`
	At      time.Time `json:"at"`
}

// Publisher handles the broker connection
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global publisher. An empty host disables publishing.
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		if host == "" {
			logger.Info("MQTT no configurado, eventos deshabilitados", "MQTT")
			return
		}
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global publisher, possibly nil when disabled
func Get() *Publisher {
	return publisher
}

// NewPublisher connects to the broker
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return p
}

// Destroy closes the broker connection
func (p *Publisher) Destroy() {
	if p == nil {
		return
	}
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (p *Publisher) IsConnected() bool {
	return p != nil && p.client != nil && p.client.IsConnected()
}

// Publish sends a JSON payload to a topic
func (p *Publisher) Publish(topic string, payload interface{}) error {
	if !p.IsConnected() {
		return nil
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := p.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishModeration emits a ban/unban event, best effort
func (p *Publisher) PublishModeration(event ModerationEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	if err := p.Publish(TopicModeration, event); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar evento de moderación: %v", err), "MQTT")
	}
}

// PublishAudit emits a permission-check event, best effort
func (p *Publisher) PublishAudit(event AuditEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	if err := p.Publish(TopicAudit, event); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar evento de auditoría: %v", err), "MQTT")
	}
}
