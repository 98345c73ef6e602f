package lyzr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// parsersByExtension maps a file extension to the platform parser used for
// the parse phase of ingestion.
var parsersByExtension = map[string]string{
	".pdf":  "pdf_parser",
	".docx": "docx_parser",
	".txt":  "txt_parser",
}

// ParserForFile returns the platform parser for the file's extension, or an
// error for unsupported types.
func ParserForFile(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	parser, ok := parsersByExtension[ext]
	if !ok {
		return "", fmt.Errorf("unsupported document type: %s", ext)
	}
	return parser, nil
}

// ParseResult is the outcome of the parse phase.
type ParseResult struct {
	Documents json.RawMessage `json:"documents"`
}

// IngestResult carries both phases of a document ingestion so callers can
// report parse and train outcomes independently.
type IngestResult struct {
	RAGID        string          `json:"rag_id"`
	ParseResult  json.RawMessage `json:"parse_result"`
	UploadResult json.RawMessage `json:"upload_result"`
}

// ParseDocument uploads a file to the platform parser and returns the
// parsed chunks.
func (c *Client) ParseDocument(ctx context.Context, parser, filename string, file io.Reader) (*ParseResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	u := fmt.Sprintf("%s/parse/?data_parser=%s", c.ragBaseURL, url.QueryEscape(parser))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result ParseResult
	if err := c.send(req, &result); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &result, nil
}

// TrainDocuments pushes parsed chunks into a RAG collection.
func (c *Client) TrainDocuments(ctx context.Context, ragID string, documents json.RawMessage) (json.RawMessage, error) {
	body := map[string]any{
		"documents": documents,
	}

	u := fmt.Sprintf("%s/train/?rag_id=%s", c.ragBaseURL, url.QueryEscape(ragID))

	var result json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, u, body, &result); err != nil {
		return nil, fmt.Errorf("train documents: %w", err)
	}
	return result, nil
}

// IngestDocument runs the full two-phase ingestion: parse the uploaded
// file, then train the parsed chunks into the collection. Both phase
// results are returned so the caller can surface each one.
func (c *Client) IngestDocument(ctx context.Context, ragID, filename string, file io.Reader) (*IngestResult, error) {
	parser, err := ParserForFile(filename)
	if err != nil {
		return nil, err
	}

	parseResult, err := c.ParseDocument(ctx, parser, filename, file)
	if err != nil {
		return nil, err
	}

	uploadResult, err := c.TrainDocuments(ctx, ragID, parseResult.Documents)
	if err != nil {
		return nil, err
	}

	return &IngestResult{
		RAGID:        ragID,
		ParseResult:  parseResult.Documents,
		UploadResult: uploadResult,
	}, nil
}
