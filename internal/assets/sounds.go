// internal/assets/sounds.go
package assets

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"go-chicken-run/internal/config"
	"go-chicken-run/internal/event"
)

const sampleRate = 44100

const (
	CueHit    = "hit"
	CuePickup = "pickup"
)

// beeps are the synthesized fallbacks: frequency in Hz and length in seconds.
var beeps = map[string][2]float64{
	CueHit:    {240, 0.12},
	CuePickup: {950, 0.10},
}

// SoundBank plays short cues in response to gameplay events.
type SoundBank struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	logger  *slog.Logger
}

// NewSoundBank loads sfx/<cue>.wav for every cue. A disabled bank plays nothing.
// The audio context is process-wide, so build one bank per process.
func NewSoundBank(settings config.Settings, logger *slog.Logger) *SoundBank {
	if logger == nil {
		logger = slog.Default()
	}
	b := &SoundBank{players: make(map[string]*audio.Player), logger: logger}
	if !settings.Audio {
		return b
	}

	b.ctx = audio.NewContext(sampleRate)
	for cue, beep := range beeps {
		path := filepath.Join(settings.AssetsDir, "sfx", cue+".wav")
		pcm, err := loadWav(path)
		if err != nil {
			logger.Warn("sound missing, using beep", "cue", cue, "error", err)
			pcm = synthBeep(beep[0], beep[1])
		}
		p := b.ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(settings.Volume)
		b.players[cue] = p
	}
	return b
}

// Attach subscribes the bank to hit and pickup events.
func (b *SoundBank) Attach(d *event.Dispatcher) {
	d.Subscribe(event.PlayerHit, b)
	d.Subscribe(event.ItemPickedUp, b)
}

func (b *SoundBank) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		b.Play(CueHit)
	case event.ItemPickedUp:
		b.Play(CuePickup)
	}
}

func (b *SoundBank) Play(cue string) {
	p, ok := b.players[cue]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		b.logger.Warn("failed to rewind cue", "cue", cue, "error", err)
		return
	}
	p.Play()
}

func loadWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return io.ReadAll(stream)
}

// synthBeep renders a sine tone as 16-bit little-endian stereo PCM.
func synthBeep(freq, seconds float64) []byte {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	const amp = 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		s := uint16(int16(v * amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[4*i:], s)
		binary.LittleEndian.PutUint16(pcm[4*i+2:], s)
	}
	return pcm
}
