package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithChannels(1), WithMaxBlockSize(2048))
	assert.Equal(t, 96000.0, cfg.SampleRate)
	assert.Equal(t, 1, cfg.Channels)
	assert.Equal(t, 2048, cfg.MaxBlockSize)
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithChannels(-2), WithMaxBlockSize(-1), nil)
	assert.Equal(t, DefaultProcessorConfig(), cfg)
}
