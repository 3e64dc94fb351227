package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/pkg/logger"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/pkg/advisor"
	"fin-jurist-be/pkg/extract"

	"github.com/google/uuid"
)

// maxUploadSize is the hard ceiling for a single uploaded file.
const maxUploadSize = 10 << 20 // 10 MiB

type IFileService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
	TextToSpeech(ctx context.Context, req *dto.TextToSpeechRequest) (*dto.TextToSpeechResponse, error)
}

type fileService struct {
	engine      *advisor.Engine
	transcriber *extract.Transcriber
	uploadDir   string
	log         logger.ILogger
}

func NewFileService(engine *advisor.Engine, transcriber *extract.Transcriber, uploadDir string, log logger.ILogger) IFileService {
	return &fileService{
		engine:      engine,
		transcriber: transcriber,
		uploadDir:   uploadDir,
		log:         log,
	}
}

func (s *fileService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, serverutils.PayloadTooLarge("File size too large. Maximum 10MB allowed.")
	}

	fileType, supported := extract.Classify(fileHeader.Filename)
	if !supported {
		return nil, serverutils.BadRequest("Unsupported file type. Supported: PDF, Word, Audio (WAV, MP3), Images")
	}

	tempPath, err := s.saveTemp(fileHeader)
	if err != nil {
		return nil, serverutils.Internal("Failed to save uploaded file", err)
	}
	defer os.Remove(tempPath)

	var content string
	var analysis string
	switch fileType {
	case extract.TypePDF:
		content, err = extract.PDFText(tempPath)
		if err != nil {
			return nil, serverutils.BadRequest(fmt.Sprintf("Error reading PDF: %v", err))
		}
		analysis = s.engine.AnalyzeDocument(ctx, content, fileType)
	case extract.TypeWord:
		if strings.EqualFold(extract.Ext(fileHeader.Filename), ".doc") {
			return nil, serverutils.BadRequest("Legacy .doc format is not supported. Please convert to .docx")
		}
		content, err = extract.WordText(tempPath)
		if err != nil {
			return nil, serverutils.BadRequest(fmt.Sprintf("Error reading Word document: %v", err))
		}
		analysis = s.engine.AnalyzeDocument(ctx, content, fileType)
	case extract.TypeAudio:
		content, err = s.transcribe(ctx, tempPath)
		if err != nil {
			return nil, err
		}
		analysis = s.engine.AnalyzeAudioTranscript(ctx, content)
	case extract.TypeImage:
		// No model call for images; the placeholder invites the user to
		// describe what they want analyzed.
		content = "Image uploaded successfully. Please describe what you'd like me to analyze about this image."
	}

	return &dto.UploadResponse{
		Filename:   fileHeader.Filename,
		FileType:   fileType,
		Content:    content,
		AiAnalysis: analysis,
		Size:       fileHeader.Size,
	}, nil
}

// saveTemp persists the upload under a random name so the original
// filename never touches the filesystem.
func (s *fileService) saveTemp(fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tempPath := filepath.Join(s.uploadDir, uuid.New().String()+extract.Ext(fileHeader.Filename))
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tempPath)
		return "", err
	}
	return tempPath, nil
}

func (s *fileService) transcribe(ctx context.Context, audioPath string) (string, error) {
	wavPath, err := extract.TranscodeToWav(ctx, audioPath)
	if err != nil {
		if errors.Is(err, extract.ErrAudioDecode) {
			return "", serverutils.BadRequest("Could not decode audio file. Supported formats: WAV, MP3, M4A, OGG")
		}
		return "", serverutils.Internal("Failed to prepare audio for transcription", err)
	}
	defer os.Remove(wavPath)

	transcript, err := s.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		s.log.Error("file_service", "speech recognition request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", serverutils.Internal("Speech recognition service error. Please try again later.", err)
	}
	if transcript == "" {
		return "Audio was not clear enough to transcribe. Please try recording again.", nil
	}
	return transcript, nil
}

func (s *fileService) TextToSpeech(_ context.Context, req *dto.TextToSpeechRequest) (*dto.TextToSpeechResponse, error) {
	return &dto.TextToSpeechResponse{
		Message: "Text-to-speech feature will be implemented with cloud TTS service",
		Text:    req.Text,
	}, nil
}
