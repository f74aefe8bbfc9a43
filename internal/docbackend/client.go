package docbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"meetingdocs/internal/docbuild"
)

// indentWidthPT is the indentation width in points per nesting level.
const indentWidthPT = 18

// Client is an HTTP client for a docs-style document API. It implements
// Backend by sending one batchUpdate request per mutation. The service
// indexes document text starting at 1, so the 0-based offsets from the
// instruction builder are shifted on the way out.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new document API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

type createDocumentRequest struct {
	Title string `json:"title"`
}

type createDocumentResponse struct {
	DocumentID string `json:"documentId"`
}

type location struct {
	Index int `json:"index"`
}

type rangeSpec struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

type dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

type paragraphStyle struct {
	NamedStyleType  string     `json:"namedStyleType,omitempty"`
	IndentStart     *dimension `json:"indentStart,omitempty"`
	IndentFirstLine *dimension `json:"indentFirstLine,omitempty"`
}

type rgbColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

type colorValue struct {
	RGBColor rgbColor `json:"rgbColor"`
}

type foregroundColor struct {
	Color colorValue `json:"color"`
}

type textStyle struct {
	Bold            bool             `json:"bold,omitempty"`
	Italic          bool             `json:"italic,omitempty"`
	ForegroundColor *foregroundColor `json:"foregroundColor,omitempty"`
}

type insertTextRequest struct {
	Location location `json:"location"`
	Text     string   `json:"text"`
}

type updateParagraphStyleRequest struct {
	Range          rangeSpec      `json:"range"`
	ParagraphStyle paragraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

type createParagraphBulletsRequest struct {
	Range        rangeSpec `json:"range"`
	BulletPreset string    `json:"bulletPreset"`
}

type updateTextStyleRequest struct {
	Range     rangeSpec `json:"range"`
	TextStyle textStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

type updateRequest struct {
	InsertText             *insertTextRequest             `json:"insertText,omitempty"`
	UpdateParagraphStyle   *updateParagraphStyleRequest   `json:"updateParagraphStyle,omitempty"`
	CreateParagraphBullets *createParagraphBulletsRequest `json:"createParagraphBullets,omitempty"`
	UpdateTextStyle        *updateTextStyleRequest        `json:"updateTextStyle,omitempty"`
}

type batchUpdateRequest struct {
	Requests []updateRequest `json:"requests"`
}

// CreateDocument creates a new document and returns its ID.
func (c *Client) CreateDocument(ctx context.Context, title string) (string, error) {
	url := fmt.Sprintf("%s/v1/documents", c.BaseURL)

	body, err := json.Marshal(createDocumentRequest{Title: title})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var created createDocumentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if created.DocumentID == "" {
		return "", fmt.Errorf("no document ID returned")
	}

	return created.DocumentID, nil
}

// InsertText inserts text at the given 0-based position.
func (c *Client) InsertText(ctx context.Context, documentID string, index int, text string) error {
	return c.batchUpdate(ctx, documentID, updateRequest{
		InsertText: &insertTextRequest{
			Location: location{Index: index + 1},
			Text:     text,
		},
	})
}

// SetParagraphStyle applies a named paragraph style to the range. The BULLET
// pseudo-style maps to the service's bullet-creation request; everything else
// is a named style update.
func (c *Client) SetParagraphStyle(ctx context.Context, documentID string, start, end int, style string) error {
	r := rangeSpec{StartIndex: start + 1, EndIndex: end + 1}
	if style == docbuild.StyleBullet {
		return c.batchUpdate(ctx, documentID, updateRequest{
			CreateParagraphBullets: &createParagraphBulletsRequest{
				Range:        r,
				BulletPreset: "BULLET_DISC_CIRCLE_SQUARE",
			},
		})
	}
	return c.batchUpdate(ctx, documentID, updateRequest{
		UpdateParagraphStyle: &updateParagraphStyleRequest{
			Range:          r,
			ParagraphStyle: paragraphStyle{NamedStyleType: style},
			Fields:         "namedStyleType",
		},
	})
}

// SetIndentation indents the paragraphs covering the range by level units.
func (c *Client) SetIndentation(ctx context.Context, documentID string, start, end, level int) error {
	indent := dimension{Magnitude: float64(level * indentWidthPT), Unit: "PT"}
	return c.batchUpdate(ctx, documentID, updateRequest{
		UpdateParagraphStyle: &updateParagraphStyleRequest{
			Range:          rangeSpec{StartIndex: start + 1, EndIndex: end + 1},
			ParagraphStyle: paragraphStyle{IndentStart: &indent, IndentFirstLine: &indent},
			Fields:         "indentStart,indentFirstLine",
		},
	})
}

// SetTextStyle applies character styling to the range. The field mask names
// only the flags the style actually sets: under the service's field-mask
// semantics a named-but-unset flag would be cleared, which must not happen
// when a mention range overlays an already-italic footer.
func (c *Client) SetTextStyle(ctx context.Context, documentID string, start, end int, style docbuild.TextStyle) error {
	fields := make([]string, 0, 3)
	if style.Bold {
		fields = append(fields, "bold")
	}
	if style.Italic {
		fields = append(fields, "italic")
	}
	fields = append(fields, "foregroundColor")

	return c.batchUpdate(ctx, documentID, updateRequest{
		UpdateTextStyle: &updateTextStyleRequest{
			Range: rangeSpec{StartIndex: start + 1, EndIndex: end + 1},
			TextStyle: textStyle{
				Bold:   style.Bold,
				Italic: style.Italic,
				ForegroundColor: &foregroundColor{
					Color: colorValue{
						RGBColor: rgbColor{Red: style.Color.R, Green: style.Color.G, Blue: style.Color.B},
					},
				},
			},
			Fields: strings.Join(fields, ","),
		},
	})
}

// batchUpdate sends a single mutation request to the document's batchUpdate
// endpoint.
func (c *Client) batchUpdate(ctx context.Context, documentID string, r updateRequest) error {
	url := fmt.Sprintf("%s/v1/documents/%s:batchUpdate", c.BaseURL, documentID)

	body, err := json.Marshal(batchUpdateRequest{Requests: []updateRequest{r}})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")
}
