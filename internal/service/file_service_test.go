package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"testing"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/pkg/advisor"
	"fin-jurist-be/pkg/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileFixture(t *testing.T, provider *fakeLLM) (IFileService, string) {
	t.Helper()
	uploadDir := t.TempDir()
	engine := advisor.NewEngine(provider, nopLogger{})
	transcriber := extract.NewTranscriber("http://localhost:9", "", "whisper-1", "en")
	return NewFileService(engine, transcriber, uploadDir, nopLogger{}), uploadDir
}

// buildFileHeader round-trips content through a real multipart body so
// the resulting header behaves exactly like one fiber hands out.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, _ := newFileFixture(t, &fakeLLM{})

	header := &multipart.FileHeader{Filename: "big.pdf", Size: 11 << 20}
	_, err := svc.Upload(context.Background(), header)

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 413, appErr.Code)
	assert.Equal(t, "File size too large. Maximum 10MB allowed.", appErr.Message)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newFileFixture(t, &fakeLLM{})

	header := &multipart.FileHeader{Filename: "script.exe", Size: 100}
	_, err := svc.Upload(context.Background(), header)

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Unsupported file type")
}

func TestUploadImageReturnsPlaceholderWithoutAnalysis(t *testing.T) {
	provider := &fakeLLM{reply: "should never be called"}
	svc, uploadDir := newFileFixture(t, provider)

	header := buildFileHeader(t, "receipt.png", []byte("not-really-a-png"))
	res, err := svc.Upload(context.Background(), header)
	require.NoError(t, err)

	assert.Equal(t, "receipt.png", res.Filename)
	assert.Equal(t, extract.TypeImage, res.FileType)
	assert.Contains(t, res.Content, "Image uploaded successfully")
	assert.Empty(t, res.AiAnalysis)
	assert.Empty(t, provider.gotChats)
	assert.Equal(t, int64(len("not-really-a-png")), res.Size)

	// Temp file is removed once processing finishes.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadCorruptPdfIsBadRequest(t *testing.T) {
	svc, _ := newFileFixture(t, &fakeLLM{})

	header := buildFileHeader(t, "broken.pdf", []byte("this is not a pdf"))
	_, err := svc.Upload(context.Background(), header)

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Error reading PDF")
}

func TestTextToSpeechReturnsStub(t *testing.T) {
	svc, _ := newFileFixture(t, &fakeLLM{})

	res, err := svc.TextToSpeech(context.Background(), &dto.TextToSpeechRequest{Text: "read this aloud"})
	require.NoError(t, err)

	assert.Equal(t, "Text-to-speech feature will be implemented with cloud TTS service", res.Message)
	assert.Equal(t, "read this aloud", res.Text)
}
