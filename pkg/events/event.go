package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Event         string          `json:"event"`         // e.g. "product.created"
	Version       string          `json:"version"`       // e.g. "v1"
	Timestamp     time.Time       `json:"timestamp"`
	Payload       json.RawMessage `json:"payload"`
	TraceID       string          `json:"traceId"`
	CorrelationID string          `json:"correlationId"`
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewHeaders(service string) Headers {
	return Headers{
		TraceID:       uuid.NewString(),
		CorrelationID: uuid.NewString(),
		Service:       service,
	}
}

func NewEvent(eventName, version string, payload any, headers Headers) (*Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		Event:         eventName,
		Version:       version,
		Timestamp:     time.Now().UTC(),
		Payload:       body,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}, nil
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DecodePayload unmarshals the event payload into dest.
func (e *Event) DecodePayload(dest any) error {
	return json.Unmarshal(e.Payload, dest)
}

func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}
