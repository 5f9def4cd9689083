package mqtt

import (
	"encoding/json"

	"github.com/kilianp07/gridcost/core/report"
)

// Sink publishes each report as a JSON document on a fixed topic.
type Sink struct {
	pub   *Publisher
	topic string
}

// NewSink connects a report sink to the broker.
func NewSink(cfg Config, topic string) (*Sink, error) {
	pub, err := NewPublisher(cfg)
	if err != nil {
		return nil, err
	}
	return &Sink{pub: pub, topic: topic}, nil
}

// Record implements report.Sink.
func (s *Sink) Record(r report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.pub.Publish(s.topic, payload)
}

// Close disconnects the underlying publisher.
func (s *Sink) Close() { s.pub.Close() }
