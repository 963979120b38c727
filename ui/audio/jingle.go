package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"serpent/game"
	"serpent/game/manager"
)

const SampleRate = beep.SampleRate(44100)

// Cue identifies a jingle
type Cue int

const (
	CueEat Cue = iota
	CueLose
	CueWin
)

// Note is a tone of Freq Hz held for Dur. A zero Freq is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var jingles = map[Cue][]Note{
	CueEat: {
		{Freq: 660, Dur: 40 * time.Millisecond},
		{Freq: 990, Dur: 60 * time.Millisecond},
	},
	CueLose: {
		{Freq: 392, Dur: 150 * time.Millisecond},
		{Freq: 330, Dur: 150 * time.Millisecond},
		{Freq: 262, Dur: 300 * time.Millisecond},
	},
	CueWin: {
		{Freq: 523, Dur: 120 * time.Millisecond},
		{Freq: 659, Dur: 120 * time.Millisecond},
		{Freq: 784, Dur: 120 * time.Millisecond},
		{Freq: 0, Dur: 60 * time.Millisecond},
		{Freq: 1047, Dur: 320 * time.Millisecond},
	},
}

// CueFor picks the jingle a frame calls for, if any. Game end wins over eating.
func CueFor(f game.Frame) (Cue, bool) {
	if f.Event != nil {
		switch f.Event.To {
		case manager.GameOver:
			return CueLose, true
		case manager.Win:
			return CueWin, true
		}
	}
	if f.Ate {
		return CueEat, true
	}
	return 0, false
}

// Duration is how long a cue plays
func Duration(c Cue) time.Duration {
	var total time.Duration
	for _, n := range jingles[c] {
		total += n.Dur
	}
	return total
}

// Compose renders notes as one streamer at the given sample rate
func Compose(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.Dur)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return beep.Seq(parts...), nil
}

// Player plays cues on the system speaker
type Player struct {
	sr     beep.SampleRate
	volume float64
}

// NewPlayer opens the speaker. Callers treat an error as "no sound".
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{sr: SampleRate, volume: volume}, nil
}

func (p *Player) Play(c Cue) error {
	s, err := Compose(p.sr, jingles[c])
	if err != nil {
		return err
	}
	speaker.Play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	})
	return nil
}

func (p *Player) Close() {
	speaker.Close()
}
