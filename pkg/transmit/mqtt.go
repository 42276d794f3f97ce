/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package transmit

import (
	"context"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

const (
	connectTimeout = 10 * time.Second
)

// Publisher is the part of mqtt.Client the transmitter needs
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTTransmitter publishes every sequence to a topic a radio bridge subscribes to.
// A sequence counts as drained once the broker has acknowledged it.
type MQTTTransmitter struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
	count   int
}

var _ Transmitter = &MQTTTransmitter{}

// NewMQTTClient connects to the broker with automatic reconnect
func NewMQTTClient(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetKeepAlive(60 * time.Second).
		SetPingTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if ok := token.WaitTimeout(connectTimeout); !ok {
		return nil, ErrMQTTTimeout{Op: "connect", Target: brokerURL}
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", brokerURL, err)
	}
	log.Info("Connected to MQTT broker: %s", brokerURL)
	return client, nil
}

func NewMQTTTransmitter(client Publisher, topic string, qos byte, timeout time.Duration) *MQTTTransmitter {
	return &MQTTTransmitter{
		client:  client,
		topic:   topic,
		qos:     qos,
		timeout: timeout,
	}
}

func (t *MQTTTransmitter) Transmit(ctx context.Context, pulses []pp16.Pulse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	token := t.client.Publish(t.topic, t.qos, false, FormatCodes(pulses))
	timer := time.NewTimer(t.timeout)
	defer timer.Stop()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrMQTTTimeout{Op: "publish", Target: t.topic}
	}
	t.count++
	return nil
}

// Count returns the number of published sequences
func (t *MQTTTransmitter) Count() int {
	return t.count
}

// FormatCodes renders a sequence as space separated hex RMT items
func FormatCodes(pulses []pp16.Pulse) string {
	var sb strings.Builder
	for i, code := range pp16.Codes(pulses) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", code)
	}
	return sb.String()
}
