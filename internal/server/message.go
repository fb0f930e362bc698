package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the payload carried by a Message.
type MessageType string

const (
	// Client → Server
	MessageTypeEvaluate MessageType = "evaluate"
	MessageTypeCompare  MessageType = "compare"

	// Server → Client
	MessageTypeResult     MessageType = "result"
	MessageTypeComparison MessageType = "comparison"
	MessageTypeError      MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message stamped with the given time
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// Client → Server Messages

type EvaluateData struct {
	Cards string `json:"cards"`
}

type CompareData struct {
	Hands []string `json:"hands"`
}

// Server → Client Messages

type ResultData struct {
	Cards    []string `json:"cards"`
	Strength uint16   `json:"strength"`
	Category string   `json:"category"`
	Name     string   `json:"name"`
}

type ComparisonData struct {
	Results []ResultData `json:"results"`
	Winners []int        `json:"winners"` // indexes of the strongest hands
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
