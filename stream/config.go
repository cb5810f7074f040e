package stream

import (
	"io"

	"gopkg.in/yaml.v2"
)

// The frame header carries the pixel count as a uint16.
const maxPixels = 1<<16 - 1

// Config is the host's YAML configuration.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Timeline struct {
		Path  string `yaml:"path"`
		Watch bool   `yaml:"watch"`
	} `yaml:"timeline"`
	Frame struct {
		Rate   float64 `yaml:"rate"`
		Pixels int     `yaml:"pixels"`
	} `yaml:"frame"`
	Animation struct {
		Hue       string  `yaml:"hue"`
		Chroma    string  `yaml:"chroma"`
		Luminance string  `yaml:"luminance"`
		LoopMs    uint32  `yaml:"loopMs"`
		SpreadMs  uint32  `yaml:"spreadMs"`
		FadeSecs  float64 `yaml:"fadeSecs"`
	} `yaml:"animation"`
	Http struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`
}

// DefaultConfig returns the settings used for anything the file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Control = "home/xmastree/timeline"
	c.Timeline.Path = "timeline.json"
	c.Frame.Rate = 30
	c.Frame.Pixels = 500
	c.Animation.Hue = "led.hue"
	c.Animation.Chroma = "led.chroma"
	c.Animation.Luminance = "led.luminance"
	c.Animation.LoopMs = 10000
	c.Animation.SpreadMs = 20
	c.Animation.FadeSecs = 5
	c.Http.Listen = ":3000"
	return c
}

// ReadConfig decodes YAML from r over the defaults. An empty document is
// not an error.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, err
	}
	if c.Frame.Rate <= 0 {
		c.Frame.Rate = 30
	}
	if c.Frame.Pixels <= 0 {
		c.Frame.Pixels = 500
	} else if c.Frame.Pixels > maxPixels {
		c.Frame.Pixels = maxPixels
	}
	return c, nil
}
