package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ankursharma200/QuestForm/internal/model"
)

const formTTL = 10 * time.Minute

// FormCache is a read-through cache for published forms so fillers loading
// the same form do not hit MongoDB every time.
type FormCache interface {
	Set(ctx context.Context, form *model.Form) error
	Get(ctx context.Context, id string) (*model.Form, error)
	Invalidate(ctx context.Context, id string) error
}

type formCache struct {
	client *redis.Client
}

func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
	}
}

func (c *formCache) Set(ctx context.Context, form *model.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "form:"+form.ID, data, formTTL).Err()
}

// Get returns (nil, nil) on a cache miss.
func (c *formCache) Get(ctx context.Context, id string) (*model.Form, error) {
	data, err := c.client.Get(ctx, "form:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var form model.Form
	err = json.Unmarshal([]byte(data), &form)
	return &form, err
}

func (c *formCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, "form:"+id).Err()
}
