package edge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/wujunwei928/edge-tts-go/edge_tts"

	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/logging"
)

// Speaker synthesizes text with the Edge TTS service and hands the audio to
// the playback sink.
type Speaker struct {
	voice     string
	outputDir string
	sink      inter.PlaybackSink
	logger    *logging.Logger
}

// Speak synthesizes text to an mp3 file and plays it. The returned path
// points at the synthesized file.
func (s *Speaker) Speak(ctx context.Context, text string) (string, error) {
	communicate, err := edge_tts.NewCommunicate(text, edge_tts.SetVoice(s.voice))
	if err != nil {
		return "", fmt.Errorf("create edge tts communicator: %w", err)
	}

	start := time.Now()
	audioData, err := communicate.Stream()
	if err != nil {
		return "", fmt.Errorf("edge tts synthesis: %w", err)
	}
	s.logger.DebugTag("TTS", "synthesis took %v for %d bytes", time.Since(start), len(audioData))

	filePath := filepath.Join(s.outputDir, fmt.Sprintf("tts-%d.mp3", time.Now().UnixNano()))
	if err := os.WriteFile(filePath, audioData, 0o644); err != nil {
		return "", fmt.Errorf("write synthesized audio: %w", err)
	}

	duration, err := mp3Duration(filePath)
	if err != nil {
		s.logger.WarnTag("TTS", "could not decode %s for duration: %v", filePath, err)
	}

	if s.sink != nil {
		if err := s.sink.Play(ctx, filePath, duration); err != nil {
			return filePath, fmt.Errorf("playback: %w", err)
		}
	}
	return filePath, nil
}

// Close removes the synthesized audio directory contents.
func (s *Speaker) Close() error {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".mp3" {
			_ = os.Remove(filepath.Join(s.outputDir, entry.Name()))
		}
	}
	return nil
}

// mp3Duration decodes the file header to compute the playback duration.
func mp3Duration(path string) (time.Duration, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	decoder, err := mp3.NewDecoder(file)
	if err != nil {
		return 0, err
	}
	// Length is the decoded PCM byte count: 16-bit stereo, 4 bytes per sample.
	samples := decoder.Length() / 4
	if decoder.SampleRate() <= 0 {
		return 0, fmt.Errorf("invalid sample rate")
	}
	seconds := float64(samples) / float64(decoder.SampleRate())
	return time.Duration(seconds * float64(time.Second)), nil
}
