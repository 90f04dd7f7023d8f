package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi/features/events"
)

// ScoreEventData announces that a side won a point. The ball simulator
// publishes at most one per update; the match reducer consumes the
// stream when the world's events are processed.
type ScoreEventData struct {
	Side cfg.Side
}

var ScoreEvent = events.NewEventType[ScoreEventData]()
