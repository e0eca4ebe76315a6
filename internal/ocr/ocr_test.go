package ocr

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
)

const sampleText = "HÓA ĐƠN GIÁ TRỊ GIA TĂNG\nNgày 05/06/2023\nTổng thanh toán 1.234.000 VND"

type stubRunner struct {
	run   func(name string, args []string) ([]byte, []byte, error)
	calls [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.run(name, args)
}

func TestExtractImage(t *testing.T) {
	stub := &stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		assert.Equal(t, "tesseract", name)
		assert.Equal(t, []string{"scan.png", "stdout", "-l", "vie+eng"}, args)
		return []byte(sampleText + "\r\n"), nil, nil
	}}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "scan.png")
	require.NoError(t, err)

	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, sampleText, res.Text)
	assert.InDelta(t, 0.8, res.Confidence, 0.0001)
}

func TestExtractImageTSVConfidence(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage\tblock\tpar\tline\tword\tleft\ttop\twidth\theight\ttext\tconf",
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\thoa\t90",
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\tdon\t80",
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\tx\t-1",
	}, "\n")
	stub := &stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		if args[len(args)-1] == "tsv" {
			return []byte(tsv), nil, nil
		}
		return []byte(sampleText), nil, nil
	}}
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "scan.jpg")
	require.NoError(t, err)

	// mean word conf 0.85 blended 70/30 with the 0.8 heuristic
	assert.InDelta(t, 0.835, res.Confidence, 0.0001)
	assert.Len(t, stub.calls, 2)
}

func TestExtractPDFEmbeddedText(t *testing.T) {
	embedded := sampleText + "\fTrang hai của hóa đơn, phần chữ ký và ghi chú."
	stub := &stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		assert.Equal(t, "pdftotext", name)
		return []byte(embedded), nil, nil
	}}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "invoice.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "05/06/2023")
	assert.Len(t, stub.calls, 1)
}

func TestExtractPDFSparseTextFallsBackToOCR(t *testing.T) {
	stub := &stubRunner{}
	stub.run = func(name string, args []string) ([]byte, []byte, error) {
		switch name {
		case "pdftotext":
			return []byte("  \n"), nil, nil
		case "pdftoppm":
			prefix := args[len(args)-1]
			require.NoError(t, os.WriteFile(prefix+"-1.png", []byte("png"), 0o644))
			return nil, nil, nil
		case "tesseract":
			return []byte(sampleText), nil, nil
		default:
			return nil, nil, errors.New("unexpected command " + name)
		}
	}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "scanned.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, sampleText, res.Text)
	assert.Len(t, stub.calls, 3)
}

func TestExtractPDFNoPagesRendered(t *testing.T) {
	stub := &stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		return nil, nil, nil
	}}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	_, err := e.Extract(context.Background(), "broken.pdf")
	assert.ErrorContains(t, err, "no pages rendered")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	_, err := e.Extract(context.Background(), "notes.txt")
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestHeuristicConfidenceEmptyText(t *testing.T) {
	assert.InDelta(t, 0.2, heuristicConfidence(""), 0.0001)
}
