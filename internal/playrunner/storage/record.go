package storage

import (
	"encoding/json"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

// encodeJob is the document form of a job used by Redis. Secrets are stored
// as given; the store is trusted with them.
func encodeJob(job *domain.Job) ([]byte, error) {
	return json.Marshal(job)
}

func decodeJob(data []byte) (*domain.Job, error) {
	var job domain.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
