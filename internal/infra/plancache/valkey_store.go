package plancache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
)

// ValkeyStore persists plans in a Valkey-compatible database as JSON.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "travel-wellness"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetPlan(ctx context.Context, key string) (jetlag.Plan, bool, error) {
	if key == "" {
		return jetlag.Plan{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return jetlag.Plan{}, false, nil
		}
		return jetlag.Plan{}, false, err
	}
	var plan jetlag.Plan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return jetlag.Plan{}, false, err
	}
	return plan, true, nil
}

func (s *ValkeyStore) SavePlan(ctx context.Context, key string, plan jetlag.Plan, ttl time.Duration) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":" + key
}

var _ jetlag.PlanCache = (*ValkeyStore)(nil)
