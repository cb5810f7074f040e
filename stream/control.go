package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/keyline/timeline"
)

// Subscriber is the part of mqtt.Client the Control needs.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// EditMessage is a timeline edit received on the control topic.
//
//	{"op": "add", "track": "led.hue", "time": 500, "value": 120, "interp": 1}
//	{"op": "update", "track": "led.hue", "time": 500, "newTime": 800, "value": 90, "interp": 4}
//	{"op": "delete", "track": "led.hue", "time": 800}
//	{"op": "deleteTrack", "track": "led.hue"}
type EditMessage struct {
	Op      string  `json:"op"`
	Track   string  `json:"track"`
	Time    uint32  `json:"time"`
	NewTime *uint32 `json:"newTime,omitempty"`
	Value   float64 `json:"value"`
	Interp  int     `json:"interp"`
}

var (
	ErrUnknownOp     = errors.New("unknown edit op")
	ErrMissingTrack  = errors.New("edit has no track")
	ErrTrackNotFound = errors.New("track not found")
)

// Control applies EditMessages to a shared timeline.
type Control struct {
	client Subscriber
	topic  string
	shared *timeline.Shared
}

func NewControl(client Subscriber, topic string, shared *timeline.Shared) *Control {
	c := new(Control)
	c.client = client
	c.topic = topic
	c.shared = shared
	return c
}

// Apply decodes and applies one edit. Rejected edits leave the timeline
// unchanged.
func (c *Control) Apply(payload []byte) error {
	var msg EditMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decoding edit: %w", err)
	}
	if msg.Track == "" {
		return ErrMissingTrack
	}

	return c.shared.Update(func(tl *timeline.Timeline) error {
		switch msg.Op {
		case "add":
			_, existed := tl.Lookup(msg.Track)
			err := tl.Track(msg.Track).Add(msg.Time, msg.Value, timeline.Interp(msg.Interp))
			if err != nil && !existed {
				tl.DeleteTrack(msg.Track)
			}
			return err
		case "update":
			newTime := msg.Time
			if msg.NewTime != nil {
				newTime = *msg.NewTime
			}
			tr, ok := tl.Lookup(msg.Track)
			if !ok {
				return ErrTrackNotFound
			}
			return tr.Update(msg.Time, timeline.NewNode(newTime, msg.Value, timeline.Interp(msg.Interp)))
		case "delete":
			tr, ok := tl.Lookup(msg.Track)
			if !ok {
				return ErrTrackNotFound
			}
			return tr.Delete(msg.Time)
		case "deleteTrack":
			if !tl.DeleteTrack(msg.Track) {
				return ErrTrackNotFound
			}
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOp, msg.Op)
		}
	})
}

func (c *Control) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	if err := c.Apply(msg.Payload()); err != nil {
		log.Printf("Rejected edit %d on %s: %v", msg.MessageID(), msg.Topic(), err)
	}
}

// Subscribe starts receiving edits. Call it again after a reconnect.
func (c *Control) Subscribe() error {
	token := c.client.Subscribe(c.topic, 1, c.handleClientMessages)
	token.Wait()
	return token.Error()
}
