package platform

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/engine"
)

// SampleRate is the output rate of the audio context.
const SampleRate = 44100

// Audio owns the audio context, the engine voices and the music loop.
type Audio struct {
	ctx *audio.Context
	log zerolog.Logger

	voices []*audio.Player

	bgm       *audio.Player
	bgmVolume float64
	fadeLeft  float64
	fadeTotal float64
}

func NewAudio(log zerolog.Logger) *Audio {
	return &Audio{
		ctx: audio.NewContext(SampleRate),
		log: log.With().Str("component", "audio").Logger(),
	}
}

// LoadEngine builds the three engine loops from a 16-bit WAV. On any
// failure it logs and returns a disabled mixer, so the game runs silent.
func (a *Audio) LoadEngine(path string) *engine.Mixer {
	layers, err := a.synthesize(path)
	if err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("engine sound disabled")
		return engine.NewMixer(a.log, nil, nil, nil)
	}

	var players [3]*audio.Player
	for i, p := range []engine.PCM{layers.Low, layers.Mid, layers.High} {
		b := p.Bytes()
		player, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b))))
		if err != nil {
			a.log.Warn().Err(err).Msg("engine sound disabled")
			return engine.NewMixer(a.log, nil, nil, nil)
		}
		players[i] = player
	}

	m := engine.NewMixer(a.log, players[0], players[1], players[2])
	for _, p := range players {
		p.Play()
	}
	a.voices = players[:]
	a.log.Info().Str("path", path).Int("frames", layers.Mid.Frames()).Msg("engine sound ready")
	return m
}

func (a *Audio) synthesize(path string) (engine.Layers, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Layers{}, err
	}
	defer f.Close()

	pcm, err := engine.DecodeWAV(f)
	if err != nil {
		return engine.Layers{}, fmt.Errorf("decode %s: %w", path, err)
	}
	// The players expect 16-bit stereo at the context rate.
	return engine.Synthesize(engine.Stereo(pcm, SampleRate)), nil
}

// PlayBGM loops an MP3 at the given volume.
func (a *Audio) PlayBGM(path string, volume float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	player, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(d, d.Length()))
	if err != nil {
		return err
	}
	player.SetVolume(volume)
	player.Play()
	a.bgm = player
	a.bgmVolume = volume
	return nil
}

// FadeOutBGM ramps the music down over seconds, then pauses it.
func (a *Audio) FadeOutBGM(seconds float64) {
	if a.bgm == nil || seconds <= 0 {
		return
	}
	a.fadeLeft, a.fadeTotal = seconds, seconds
}

// RestartBGM plays the music again from the top.
func (a *Audio) RestartBGM() {
	if a.bgm == nil {
		return
	}
	a.fadeLeft = 0
	if err := a.bgm.Rewind(); err != nil {
		a.log.Warn().Err(err).Msg("rewind music")
	}
	a.bgm.SetVolume(a.bgmVolume)
	a.bgm.Play()
}

// Update advances a running fade.
func (a *Audio) Update(dt float64) {
	if a.bgm == nil || a.fadeLeft <= 0 {
		return
	}
	a.fadeLeft -= dt
	if a.fadeLeft <= 0 {
		a.bgm.Pause()
		return
	}
	a.bgm.SetVolume(a.bgmVolume * a.fadeLeft / a.fadeTotal)
}

// Close stops every player.
func (a *Audio) Close() {
	for _, p := range a.voices {
		p.Close()
	}
	if a.bgm != nil {
		a.bgm.Close()
	}
}
