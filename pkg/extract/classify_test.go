package extract

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantType string
		wantOk   bool
	}{
		{name: "pdf", filename: "contract.pdf", wantType: TypePDF, wantOk: true},
		{name: "uppercase extension", filename: "REPORT.PDF", wantType: TypePDF, wantOk: true},
		{name: "docx", filename: "agreement.docx", wantType: TypeWord, wantOk: true},
		{name: "legacy doc", filename: "old.doc", wantType: TypeWord, wantOk: true},
		{name: "wav", filename: "memo.wav", wantType: TypeAudio, wantOk: true},
		{name: "mp3", filename: "call.mp3", wantType: TypeAudio, wantOk: true},
		{name: "m4a", filename: "voice.m4a", wantType: TypeAudio, wantOk: true},
		{name: "jpeg", filename: "scan.jpeg", wantType: TypeImage, wantOk: true},
		{name: "png", filename: "receipt.png", wantType: TypeImage, wantOk: true},
		{name: "dotted name", filename: "archive.v2.pdf", wantType: TypePDF, wantOk: true},
		{name: "unsupported", filename: "malware.exe", wantType: "", wantOk: false},
		{name: "no extension", filename: "README", wantType: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOk := Classify(tt.filename)
			if gotType != tt.wantType || gotOk != tt.wantOk {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)",
					tt.filename, gotType, gotOk, tt.wantType, tt.wantOk)
			}
		})
	}
}

func TestExt(t *testing.T) {
	if got := Ext("Voice.M4A"); got != ".m4a" {
		t.Errorf("Ext(Voice.M4A) = %q, want .m4a", got)
	}
	if got := Ext("noext"); got != "" {
		t.Errorf("Ext(noext) = %q, want empty", got)
	}
}
