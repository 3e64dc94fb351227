package dto

type UploadResponse struct {
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	Content    string `json:"content"`
	AiAnalysis string `json:"ai_analysis"`
	Size       int64  `json:"size"`
}

type TextToSpeechRequest struct {
	Text string `json:"text" validate:"required"`
}

type TextToSpeechResponse struct {
	Message string `json:"message"`
	Text    string `json:"text"`
}
