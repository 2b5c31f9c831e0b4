package mqtt

import (
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/aircon-core/internal/infrastructure/config"
)

func testConfig() config.MQTTConfig {
	cfg := config.MQTTConfig{}
	cfg.Enabled = true
	cfg.Broker.Host = "localhost"
	cfg.Broker.Port = 1883
	cfg.Broker.ClientID = "airconcore-test"
	cfg.QoS = 1
	cfg.Reconnect.InitialDelay = 1
	cfg.Reconnect.MaxDelay = 30
	return cfg
}

func TestBuildClientOptions(t *testing.T) {
	cfg := testConfig()
	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].String(); got != "tcp://localhost:1883" {
		t.Errorf("broker URL = %q, want tcp://localhost:1883", got)
	}
	if opts.ClientID != "airconcore-test" {
		t.Errorf("client ID = %q", opts.ClientID)
	}
	if !opts.AutoReconnect {
		t.Error("auto reconnect should be enabled")
	}
}

func TestBuildClientOptions_TLSScheme(t *testing.T) {
	cfg := testConfig()
	cfg.Broker.TLS = true
	cfg.Broker.Port = 8883

	opts := buildClientOptions(cfg)
	if got := opts.Servers[0].String(); got != "ssl://localhost:8883" {
		t.Errorf("broker URL = %q, want ssl://localhost:8883", got)
	}
}

func TestConfigureLWT(t *testing.T) {
	cfg := testConfig()
	opts := buildClientOptions(cfg)
	configureLWT(opts, cfg.Broker.ClientID)

	if opts.WillTopic != TopicSystemStatus {
		t.Errorf("will topic = %q, want %q", opts.WillTopic, TopicSystemStatus)
	}
	if !opts.WillRetained {
		t.Error("will should be retained")
	}
	will := string(opts.WillPayload)
	if !strings.Contains(will, `"status":"offline"`) || !strings.Contains(will, "unexpected_disconnect") {
		t.Errorf("will payload = %s", will)
	}
}

func TestStatusPayloads(t *testing.T) {
	online := buildOnlinePayload("airconcore-test")
	if !strings.Contains(online, `"status":"online"`) || !strings.Contains(online, "airconcore-test") {
		t.Errorf("online payload = %s", online)
	}

	offline := buildOfflinePayload("airconcore-test")
	if !strings.Contains(offline, "graceful_shutdown") {
		t.Errorf("offline payload = %s", offline)
	}
}

func TestPublish_Validation(t *testing.T) {
	c := &Client{cfg: testConfig(), subscriptions: make(map[string]subscription)}

	if err := c.Publish("", []byte("x"), 1, false); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := c.Publish(TopicState, []byte("x"), 3, false); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("qos 3 error = %v, want ErrInvalidQoS", err)
	}
	if err := c.Publish(TopicState, make([]byte, maxPayloadSize+1), 1, false); !errors.Is(err, ErrPublishFailed) {
		t.Errorf("oversized payload error = %v, want ErrPublishFailed", err)
	}
}

func TestSubscribe_Validation(t *testing.T) {
	c := &Client{cfg: testConfig(), subscriptions: make(map[string]subscription)}

	if err := c.Subscribe("", 1, func(string, []byte) error { return nil }); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := c.Subscribe(TopicCommand, 1, nil); !errors.Is(err, ErrSubscribeFailed) {
		t.Errorf("nil handler error = %v, want ErrSubscribeFailed", err)
	}
}
