package mqtt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcost/core/report"
)

type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t fakeToken) Error() error { return t.err }

type fakeClient struct {
	published  [][]byte
	topics     []string
	failsLeft  int
	publishErr error
}

func (f *fakeClient) IsConnected() bool      { return true }
func (f *fakeClient) Connect() paho.Token    { return fakeToken{} }
func (f *fakeClient) Disconnect(uint)        {}
func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	if f.failsLeft > 0 {
		f.failsLeft--
		return fakeToken{err: f.publishErr}
	}
	f.topics = append(f.topics, topic)
	f.published = append(f.published, payload.([]byte))
	return fakeToken{}
}

func withFakeClient(t *testing.T, f *fakeClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return f }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestPublisherRetries(t *testing.T) {
	f := &fakeClient{failsLeft: 2, publishErr: errors.New("broker unavailable")}
	withFakeClient(t, f)

	pub, err := NewPublisher(Config{Broker: "tcp://localhost:1883", ClientID: "test", MaxRetries: 3})
	require.NoError(t, err)
	defer pub.Close()

	require.NoError(t, pub.Publish("gridcost/report", []byte("{}")))
	require.Len(t, f.published, 1)
}

func TestPublisherGivesUpAfterMaxRetries(t *testing.T) {
	f := &fakeClient{failsLeft: 10, publishErr: errors.New("broker unavailable")}
	withFakeClient(t, f)

	pub, err := NewPublisher(Config{Broker: "tcp://localhost:1883", ClientID: "test", MaxRetries: 1})
	require.NoError(t, err)
	defer pub.Close()

	err = pub.Publish("gridcost/report", []byte("{}"))
	require.Error(t, err)
	assert.Empty(t, f.published)
}

func TestSinkPublishesReportJSON(t *testing.T) {
	f := &fakeClient{}
	withFakeClient(t, f)

	sink, err := NewSink(Config{Broker: "tcp://localhost:1883", ClientID: "test"}, "gridcost/report")
	require.NoError(t, err)
	defer sink.Close()

	r := report.Report{RunID: "run-42", Scenario: "urban-household"}
	require.NoError(t, sink.Record(r))
	require.Len(t, f.published, 1)
	assert.Equal(t, "gridcost/report", f.topics[0])

	var got report.Report
	require.NoError(t, json.Unmarshal(f.published[0], &got))
	assert.Equal(t, "run-42", got.RunID)
}

func TestLoadTLSConfigRequiresPaths(t *testing.T) {
	_, err := Config{UseTLS: true}.LoadTLSConfig()
	require.Error(t, err)
}
