package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Whisper   WhisperConfig   `yaml:"whisper"`
	FFmpeg    FFmpegConfig    `yaml:"ffmpeg"`
	Source    SourceConfig    `yaml:"source"`
	Paths     PathsConfig     `yaml:"paths"`
	Logging   LoggingConfig   `yaml:"logging"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Retention RetentionConfig `yaml:"retention"`
	Export    ExportConfig    `yaml:"export"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	AudioCodec string `yaml:"audio_codec"`
}

type SourceConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
}

type PathsConfig struct {
	Processing string `yaml:"processing"`
	Summaries  string `yaml:"summaries"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// RetentionConfig selects which artifacts survive in a job's working
// directory after it succeeds. The summary is never subject to retention.
type RetentionConfig struct {
	KeepMedia      bool `yaml:"keep_media"`
	KeepAudio      bool `yaml:"keep_audio"`
	KeepTranscript bool `yaml:"keep_transcript"`
}

type ExportConfig struct {
	Docx    bool   `yaml:"docx"`
	DocxDir string `yaml:"docx_dir"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.Source.BinaryPath == "" {
		c.Source.BinaryPath = "yt-dlp"
	}
	if c.Source.Format == "" {
		c.Source.Format = "bestvideo+bestaudio/best"
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "processing"
	}
	if c.Paths.Summaries == "" {
		c.Paths.Summaries = "summaries.md"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Export.Docx && c.Export.DocxDir == "" {
		c.Export.DocxDir = "summaries-docx"
	}

	return nil
}

// ApplyEnv overrides retention flags from KEEP_MEDIA, KEEP_AUDIO and
// KEEP_TRANSCRIPT when those variables are set to a parseable boolean.
func (c *Config) ApplyEnv() {
	if v, ok := boolEnv("KEEP_MEDIA"); ok {
		c.Retention.KeepMedia = v
	}
	if v, ok := boolEnv("KEEP_AUDIO"); ok {
		c.Retention.KeepAudio = v
	}
	if v, ok := boolEnv("KEEP_TRANSCRIPT"); ok {
		c.Retention.KeepTranscript = v
	}
}

func boolEnv(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}

// APIKeysFromEnv returns the Gemini API keys from GEMINI_API_KEYS
// (comma-separated) or GEMINI_API_KEY. Empty when no credential is set.
func APIKeysFromEnv() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
