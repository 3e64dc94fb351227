package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// WordText extracts paragraph text from a .docx archive, concatenated
// with newlines and trimmed. Legacy binary .doc files are not valid
// zip archives and fail parsing, which callers surface as a bad upload.
func WordText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open word document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat word document: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse word document: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(para.String())
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
