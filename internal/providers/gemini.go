package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
)

const (
	geminiTimeout = 30 * time.Second
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	defaultMimeType = "image/jpeg"
)

const visionPrompt = `Analyze the following image and extract the power outage schedule data.
Assign the extracted structured data to the 'groups' key.
Use Group ID like 1.1, 1.2, 1.3, etc. from orange blocks.
Use date from the top left corner of the image (orange block).
Use this exact structure for the data:
{
  "groups": [
    {
      "id": "Group ID (e.g., 1.1)",
      "date": "Date (e.g., 31.10.2025)",
      "status": "Power status (e.g., Електроенергії немає or Електроенергія є)",
      "schedule": "Time range(s) or empty string (e.g., 14:00-15:30 or '')"
    }
  ]
}`

const visionSystemInstruction = "You are an expert OCR and data extraction tool. " +
	"Your only task is to analyze the images based on the user's prompt and return a single, " +
	"valid JSON object containing the data for all images. " +
	"Do not include any text outside of the final JSON object."

// VisionResult is the tagged outcome of a vision call: the success variant
// carries the structured schedule payload, the failure variant an error
// description. A failed analysis is data, not a Go error — callers degrade
// instead of aborting.
type VisionResult struct {
	OK     bool
	Groups []dal.Group
	Err    string
}

// GeminiClient extracts schedule data from a published graphic via the
// Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey string
	model  string

	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: geminiTimeout},
	}
}

// Analyze runs OCR extraction over the image at the given URL.
func (c *GeminiClient) Analyze(ctx context.Context, imageURL string) VisionResult {
	groups, err := c.analyze(ctx, imageURL)
	if err != nil {
		return VisionResult{Err: err.Error()}
	}
	return VisionResult{OK: true, Groups: groups}
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type visionPayload struct {
	Groups []dal.Group `json:"groups"`
}

func (c *GeminiClient) analyze(ctx context.Context, imageURL string) ([]dal.Group, error) {
	if c.apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	data, mimeType, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
				{Text: visionPrompt},
			},
		}},
		GenerationConfig: geminiGenConfig{
			// temperature 0 for reliable extraction
			ResponseMimeType: "application/json",
			Temperature:      0,
		},
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: visionSystemInstruction}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal vision request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision call failed: status=%s: %s", resp.Status, respBody)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal vision response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("vision response has no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	var extracted visionPayload
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return nil, fmt.Errorf("unmarshal extracted schedule: %w", err)
	}

	return extracted.Groups, nil
}

func (c *GeminiClient) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image %s: %w", imageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image %s: status=%s", imageURL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read image %s: %w", imageURL, err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = defaultMimeType
	}

	return data, mimeType, nil
}
