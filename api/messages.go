package api

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

// StartRequest asks for a job to be queued. Overrides carry start-time
// passwords and usernames keyed by credential field name.
type StartRequest struct {
	ID        string            `json:"id"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

type ListRequest struct {
	Statuses []domain.JobStatus `json:"statuses,omitempty"`
	Limit    int                `json:"limit,omitempty"`
}

type ListResponse struct {
	Jobs []*domain.Job `json:"jobs"`
}

type PasswordsResponse struct {
	Fields []string `json:"fields"`
}

// WatchUpdate is one message of the WatchJob stream. Output holds only the
// transcript produced since the previous update.
type WatchUpdate struct {
	JobID     string           `json:"jobId"`
	Status    domain.JobStatus `json:"status"`
	Output    string           `json:"output,omitempty"`
	Traceback string           `json:"traceback,omitempty"`
	Final     bool             `json:"final,omitempty"`
}

// ToStruct converts a JSON-tagged value into a protobuf Struct.
func ToStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return structpb.NewStruct(fields)
}

// FromStruct decodes a protobuf Struct into a JSON-tagged value.
func FromStruct(s *structpb.Struct, v interface{}) error {
	if s == nil {
		return fmt.Errorf("decode message: empty message")
	}
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}
