package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cafe-directory/internal/cache"
)

// Flash messages are one-shot notices queued for a visitor and drained on
// the next page render. They live in a redis list keyed by the visitor id
// cookie, with a TTL so abandoned sessions don't accumulate.

const flashTTL = 30 * time.Minute

// FlashMessage pairs a display category ("success", "danger") with its text.
type FlashMessage struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func flashKey(visitorID string) string {
	return "flash:" + visitorID
}

// AddFlash queues a flash message for the visitor.
func AddFlash(ctx context.Context, cc cache.Cache, visitorID, category, message string) error {
	if visitorID == "" {
		return nil
	}
	payload, err := json.Marshal(FlashMessage{Category: category, Message: message})
	if err != nil {
		return fmt.Errorf("AddFlash: %w", err)
	}
	key := flashKey(visitorID)
	if err := cc.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("AddFlash: %w", err)
	}
	if err := cc.Expire(ctx, key, flashTTL).Err(); err != nil {
		return fmt.Errorf("AddFlash: %w", err)
	}
	return nil
}

// PopFlashes drains and returns the visitor's queued messages, oldest first.
func PopFlashes(ctx context.Context, cc cache.Cache, visitorID string) ([]FlashMessage, error) {
	if visitorID == "" {
		return nil, nil
	}
	key := flashKey(visitorID)
	raw, err := cc.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("PopFlashes: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if err := cc.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("PopFlashes: %w", err)
	}

	messages := make([]FlashMessage, 0, len(raw))
	for _, r := range raw {
		var m FlashMessage
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("PopFlashes: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}
