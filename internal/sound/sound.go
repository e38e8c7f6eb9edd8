package sound

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/helpers"
	sound_config "github.com/XtremePrime/ATM-Software-RELOADED/internal/sound/config"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/juju/errors"
)

const sampleRate = 44100

// bytes per sample frame after decode: 16-bit stereo
const frameBytes = 4

type Clip uint8

const (
	ClipCard Clip = iota
	ClipMenu
	ClipClick
	ClipKey
	ClipCash
	ClipReceipt
	clipCount
)

var clipNames = [clipCount]string{"card", "menu", "click", "key", "cash", "receipt"}

func (c Clip) String() string { return clipNames[c] }

// Durations used for sequencing when audio is disabled, so the routine
// timing still matches a plausible clip length.
var fallbackDuration = [clipCount]time.Duration{
	ClipCard:    1800 * time.Millisecond,
	ClipMenu:    300 * time.Millisecond,
	ClipClick:   200 * time.Millisecond,
	ClipKey:     150 * time.Millisecond,
	ClipCash:    1600 * time.Millisecond,
	ClipReceipt: 1200 * time.Millisecond,
}

type stream struct {
	data     []byte
	volume   float64
	duration time.Duration
}

type System struct {
	conf         *sound_config.Config
	log          *log2.Log
	audioContext *audio.Context
	clips        [clipCount]stream
}

// NewSystem decodes all six clips up front. Any missing or undecodable clip
// is a fatal resource error per the startup contract.
func NewSystem(conf *sound_config.Config, log *log2.Log) (*System, error) {
	s := &System{conf: conf, log: log}
	if conf.Disabled {
		for c := Clip(0); c < clipCount; c++ {
			s.clips[c].duration = fallbackDuration[c]
		}
		return s, nil
	}
	s.audioContext = audio.NewContext(sampleRate)

	folder := helpers.ConfigDefaultStr(conf.Folder, "res")
	files := [clipCount]struct {
		name   string
		volume int
	}{
		ClipCard:    {helpers.ConfigDefaultStr(conf.Card, "card_snd.wav"), conf.CardVolume},
		ClipMenu:    {helpers.ConfigDefaultStr(conf.Menu, "menu_snd.wav"), conf.MenuVolume},
		ClipClick:   {helpers.ConfigDefaultStr(conf.Click, "click_snd.wav"), conf.ClickVolume},
		ClipKey:     {helpers.ConfigDefaultStr(conf.Key, "key_snd.wav"), conf.KeyVolume},
		ClipCash:    {helpers.ConfigDefaultStr(conf.Cash, "cash_snd.wav"), conf.CashVolume},
		ClipReceipt: {helpers.ConfigDefaultStr(conf.Receipt, "print_receipt_snd.wav"), conf.ReceiptVolume},
	}
	defVol := helpers.ConfigDefaultInt(conf.DefaultVolume, 10)
	for c := Clip(0); c < clipCount; c++ {
		path := filepath.Join(folder, files[c].name)
		data, err := loadWavStream(path)
		if err != nil {
			return nil, errors.Annotatef(err, "load sound %s", clipNames[c])
		}
		s.clips[c] = stream{
			data:     data,
			volume:   float64(helpers.ConfigDefaultInt(files[c].volume, defVol)) / 10,
			duration: time.Duration(len(data)/frameBytes) * time.Second / sampleRate,
		}
	}
	s.log.Info("sound module started")
	return s, nil
}

// Play is fire-and-forget; overlapping playback of short clips is fine.
func (s *System) Play(c Clip) {
	if s.conf.Disabled {
		return
	}
	p := s.audioContext.NewPlayerFromBytes(s.clips[c].data)
	p.SetVolume(s.clips[c].volume)
	p.Play()
}

// Duration reports the clip playback length. The routine dispatcher uses it
// to gate tray animations and completion callbacks.
func (s *System) Duration(c Clip) time.Duration { return s.clips[c].duration }

func loadWavStream(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(d)
}
