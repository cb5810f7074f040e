package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client    Publisher
	topic     string
	animation Animation
	interval  time.Duration
}

// NewStreamer creates an instance of a Streamer publishing frameRate frames
// per second to topic.
func NewStreamer(client Publisher, topic string, animation Animation, frameRate float64) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.animation = animation
	s.interval = time.Duration(float64(time.Second) / frameRate)
	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	start := time.Now()
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-publishTimer.C:
			if err := s.SendFrame(now.Sub(start).Milliseconds()); err != nil {
				log.Printf("Publish to %s failed: %v", s.topic, err)
			}
		}
	}
}
