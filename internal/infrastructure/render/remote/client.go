// Package remote delivers report documents to the external PDF service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"gestobra/internal/core/apperror"
	"gestobra/internal/domain/reports"
	"gestobra/pkg/logger"
)

// Collaborator names the PDF service in TRANSPORT_FAILURE details.
const Collaborator = "pdf-renderer"

// maxResponseBytes bounds the body read from the service (PDF included).
const maxResponseBytes = 32 << 20

// Config of the PDF service client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Compress gzips request bodies; rows of a complete report get large.
	Compress bool
}

// Renderer implements reports.Renderer over HTTP.
type Renderer struct {
	baseURL  string
	client   *http.Client
	compress bool
}

var _ reports.Renderer = (*Renderer)(nil)

// New creates a client for the service at cfg.BaseURL.
func New(cfg Config) *Renderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Renderer{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		compress: cfg.Compress,
	}
}

type column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

type renderRequest struct {
	Title        string           `json:"title"`
	Entity       string           `json:"entity"`
	Type         string           `json:"type"`
	Value        string           `json:"value,omitempty"`
	Columns      []column         `json:"columns"`
	Rows         []map[string]any `json:"rows"`
	ContentFlags map[string]bool  `json:"contentFlags"`
	GeneratedAt  time.Time        `json:"generatedAt"`
}

type renderResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Error    string `json:"error"`
	FileName string `json:"fileName"`
}

func (r *Renderer) Render(ctx context.Context, doc reports.Document) (*reports.Output, error) {
	payload, err := json.Marshal(newRenderRequest(doc))
	if err != nil {
		return nil, fmt.Errorf("encode render request: %w", err)
	}

	body, encoding, err := r.encode(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", body)
	if err != nil {
		return nil, fmt.Errorf("build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf, application/json")
	if encoding != "" {
		req.Header.Set("Content-Encoding", encoding)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperror.NewTransportFailure(Collaborator, err.Error(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.NewTransportFailure(Collaborator, err.Error(), err)
	}

	logger.Debug(ctx, "pdf renderer responded",
		"status", resp.StatusCode,
		"bytes", len(raw),
	)

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	if resp.StatusCode >= 400 {
		return nil, apperror.NewTransportFailure(Collaborator, upstreamMessage(raw, resp.Status), nil).
			WithDetail("status", resp.StatusCode)
	}

	if mediaType == "application/pdf" {
		return &reports.Output{
			ContentType: mediaType,
			FileName:    fileName(doc, ".pdf"),
			Body:        raw,
		}, nil
	}

	var ack renderResponse
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, apperror.NewTransportFailure(Collaborator, "unexpected response from PDF service", err)
	}
	if !ack.Success {
		return nil, apperror.NewTransportFailure(Collaborator, upstreamMessage(raw, "PDF service refused the report"), nil)
	}

	name := ack.FileName
	if name == "" {
		name = fileName(doc, ".pdf")
	}
	return &reports.Output{ContentType: "application/json", FileName: name}, nil
}

func (r *Renderer) encode(payload []byte) (io.Reader, string, error) {
	if !r.compress {
		return bytes.NewReader(payload), "", nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, "", fmt.Errorf("compress render request: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("compress render request: %w", err)
	}
	return &buf, "gzip", nil
}

func newRenderRequest(doc reports.Document) renderRequest {
	visible := doc.VisibleColumns()
	cols := make([]column, 0, len(visible))
	for _, c := range visible {
		cols = append(cols, column{Key: c.Key, Header: c.Header})
	}

	flags := doc.Flags
	if flags == nil {
		flags = map[string]bool{}
	}

	return renderRequest{
		Title:        doc.Title,
		Entity:       doc.Entity,
		Type:         string(doc.Config.Type),
		Value:        doc.Config.Value,
		Columns:      cols,
		Rows:         doc.Rows,
		ContentFlags: flags,
		GeneratedAt:  doc.GeneratedAt,
	}
}

// upstreamMessage extracts the service's own error text, verbatim.
func upstreamMessage(raw []byte, fallback string) string {
	var resp renderResponse
	if err := json.Unmarshal(raw, &resp); err == nil {
		if resp.Message != "" {
			return resp.Message
		}
		if resp.Error != "" {
			return resp.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) <= 512 {
		return text
	}
	return fallback
}

func fileName(doc reports.Document, ext string) string {
	parts := []string{doc.Entity, string(doc.Config.Type)}
	if doc.Config.Type != reports.TypeComplete && doc.Config.Value != "" {
		parts = append(parts, doc.Config.Value)
	}
	return strings.Join(parts, "_") + ext
}
