package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sant0-9/corpresearch/internal/plan"
)

func TestWritePDF(t *testing.T) {
	p := plan.FromContents(map[string]string{
		"Company Overview": "Acme builds anvils.",
		"Competitors":      "Globex.",
	})

	var buf bytes.Buffer
	if err := WritePDF(p, &buf); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

func TestSave(t *testing.T) {
	p := plan.New()
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := Save(p, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("file does not start with a PDF header")
	}
}
