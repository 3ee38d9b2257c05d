// Package feed reads live samples from an MQTT broker and turns them into
// line charts.
package feed

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// OnSample receives every valid sample read from the broker.
type OnSample func(s Sample)

type Feed struct {
	mqttClient    mqtt.Client
	logger        *slog.Logger
	topic         string
	lastMessage   concurrentTimer
	maxSilence    time.Duration
	stopMonitorCh chan struct{}
	OnSample      OnSample
}

// New prepares a client for broker; samples are read from "<topic>/#".
func New(broker string, port int16, username, password, clientID, topic string) *Feed {
	logger := slog.Default().With("module", "feed")
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", broker, port))
	opts.SetClientID(clientID)
	opts.SetUsername(username)
	opts.SetPassword(password)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(client mqtt.Client) {
		logger.Info("MQTT connected", slog.String("broker", broker))
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", slog.Any("error", err))
	}

	mqttLogger := slog.Default().With("module", "mqtt")
	mqtt.CRITICAL = newMqttLogger(mqttLogger, slog.LevelError)
	mqtt.ERROR = newMqttLogger(mqttLogger, slog.LevelError)
	mqtt.WARN = newMqttLogger(mqttLogger, slog.LevelWarn)

	return &Feed{
		mqttClient: mqtt.NewClient(opts),
		logger:     logger,
		topic:      topic,
		maxSilence: time.Minute,
	}
}

func (f *Feed) subscription() string {
	return f.topic + "/#"
}

func (f *Feed) Connect() error {
	f.logger.Debug("connecting MQTT client")

	if token := f.mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	f.silenceWatchdog()

	token := f.mqttClient.Subscribe(f.subscription(), 0, func(client mqtt.Client, msg mqtt.Message) {
		f.handleMessage(msg.Topic(), msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}

	return nil
}

func (f *Feed) handleMessage(topic string, payload []byte) {
	f.lastMessage.Reset()

	s, err := ParseSample(topic, payload)
	if err != nil {
		f.logger.Warn("dropping sample", slog.String("topic", topic), slog.Any("error", err))
		return
	}
	if f.OnSample != nil {
		f.OnSample(s)
	}
}

func (f *Feed) Disconnect() {
	f.logger.Info("disconnecting MQTT client")
	if f.stopMonitorCh != nil {
		close(f.stopMonitorCh)
		f.stopMonitorCh = nil
	}

	token := f.mqttClient.Unsubscribe(f.subscription())
	token.WaitTimeout(1 * time.Second)
	if token.Error() != nil {
		f.logger.Error("error unsubscribing", slog.Any("error", token.Error()))
	}

	f.mqttClient.Disconnect(250)
}

// silenceWatchdog warns once when no sample arrived for maxSilence and
// again when traffic is back.
func (f *Feed) silenceWatchdog() {
	trafficOk := true
	f.lastMessage.Reset()
	f.stopMonitorCh = make(chan struct{})
	stop := f.stopMonitorCh

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if f.lastMessage.Elapsed() >= f.maxSilence {
					if trafficOk {
						f.logger.Warn(fmt.Sprintf("no samples for the last %.0f seconds", f.maxSilence.Seconds()))
						trafficOk = false
					}
				} else if !trafficOk {
					f.logger.Info("samples are flowing again")
					trafficOk = true
				}

			case <-stop:
				f.logger.Debug("stopping feed monitor routine")
				return
			}
		}
	}()
}
