package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrAudioDecode marks input that ffmpeg could not decode; callers map
// it to a bad-request response rather than a service failure.
var ErrAudioDecode = errors.New("audio decode failed")

// TranscodeToWav re-encodes any supported audio input to 16 kHz mono
// WAV, the canonical format the speech endpoint accepts. Returns the
// path of the temporary WAV file; the caller owns its cleanup.
func TranscodeToWav(ctx context.Context, srcPath string) (string, error) {
	dstPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".stt.wav"

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", srcPath,
		"-ar", "16000",
		"-ac", "1",
		dstPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("%w: %v: %s", ErrAudioDecode, err, stderr.String())
	}

	return dstPath, nil
}

// Transcriber posts WAV audio to an OpenAI-compatible transcription
// endpoint (/audio/transcriptions).
type Transcriber struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
	Client   *http.Client
}

func NewTranscriber(baseURL, apiKey, model, language string) *Transcriber {
	return &Transcriber{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Model:    model,
		Language: language,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the WAV file and returns the recognized text.
// An empty transcript is a valid result (unintelligible audio), not an
// error.
func (t *Transcriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	file, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("open wav: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy wav into form: %w", err)
	}
	_ = writer.WriteField("model", t.Model)
	if t.Language != "" {
		_ = writer.WriteField("language", t.Language)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	url := t.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if t.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.APIKey)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription error: status %d, body: %s", resp.StatusCode, string(respBytes))
	}

	var transcription transcriptionResponse
	if err := json.Unmarshal(respBytes, &transcription); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return strings.TrimSpace(transcription.Text), nil
}
