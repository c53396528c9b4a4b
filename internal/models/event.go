package models

import "time"

// Event is one audit record in the events collection. ActorRole is "admin"
// or "system"; TargetType names what was touched (episode, topic, file, push).
type Event struct {
	TimeStamp time.Time `json:"timestamp" bson:"timestamp"`

	// Action is dotted, e.g. "sync.file_updated" or "episode.created".
	Action string `bson:"action" json:"action"`

	ActorID   string `bson:"actorID" json:"actorID"`
	ActorRole string `bson:"actorRole" json:"actorRole"`

	TargetID   string `bson:"targetID" json:"targetID"`
	TargetType string `bson:"targetType" json:"targetType"`

	Props map[string]any `bson:"props,omitempty" json:"props,omitempty"`
}
