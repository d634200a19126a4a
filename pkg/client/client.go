package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/paintover/inpaint-proxy-api/pkg/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	connectPath  = "/config"
	generatePath = "/run/generate_image_handler"

	dataURIPrefix      = "data:image/png;base64,"
	generatedImagePath = "data.0.from_backend.generated_image"
)

// imageBundle is the editor widget value the deployment expects. The
// upload is duplicated across every field, mask and layers carry the
// selection.
type imageBundle struct {
	Image      string   `json:"image"`
	Background string   `json:"background"`
	Composite  string   `json:"composite"`
	Layers     []string `json:"layers"`
	Mask       string   `json:"mask"`
}

// frontendState wraps the prompt and the slot the backend fills in
type frontendState struct {
	Prompt         string      `json:"prompt"`
	GeneratedImage interface{} `json:"generated_image"`
}

type framePayload struct {
	FromFrontend frontendState `json:"from_frontend"`
}

// generationParams is the explicit form of the positional tail of the
// remote call.
type generationParams struct {
	Model           string
	NegativePrompt  string
	Enabled         bool
	GrowSize        int
	EdgeStrength    float64
	ColorStrength   float64
	InpaintStrength float64
	Seed            int64
	Steps           int
	Cfg             float64
	Sampler         string
	Scheduler       string
}

// positional returns the fields in the exact order generate_image_handler
// consumes them. Keep in sync with the hosted deployment.
func (g generationParams) positional() []interface{} {
	return []interface{}{
		g.Model,
		g.NegativePrompt,
		g.Enabled,
		g.GrowSize,
		g.EdgeStrength,
		g.ColorStrength,
		g.InpaintStrength,
		g.Seed,
		g.Steps,
		g.Cfg,
		g.Sampler,
		g.Scheduler,
	}
}

type predictRequest struct {
	Data []interface{} `json:"data"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient endpoint is the deployment base url. No client side timeout,
// generation can run for minutes, the transport defaults bound the call.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// Connect verify the deployment is reachable before the first call
func (c *Client) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+connectPath, nil)
	if err != nil {
		return errors.Wrap(err, "could not establish connection")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not establish connection")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("could not establish connection: status %d", resp.StatusCode)
	}
	return nil
}

// GenerateImage invoke generate_image_handler once and extract the
// generated image, prefixed as a png data URI
func (c *Client) GenerateImage(ctx context.Context, request *models.InpaintRequest) (string, error) {
	payload := buildPayload(request)
	body, err := json.Marshal(predictRequest{Data: payload})
	if err != nil {
		return "", errors.Wrap(err, "marshal predict request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build predict request")
	}
	req.Header.Set("Content-Type", "application/json")

	logrus.Debugf("predict request to %s", c.endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "predict call fail")
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read predict response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("predict call fail: status %d", resp.StatusCode)
	}
	return extractImage(respBody)
}

func buildPayload(r *models.InpaintRequest) []interface{} {
	bundle := imageBundle{
		Image:      r.UploadedImage,
		Background: r.UploadedImage,
		Composite:  r.UploadedImage,
		Layers:     []string{r.Selection},
		Mask:       r.Selection,
	}
	frame := framePayload{
		FromFrontend: frontendState{
			Prompt:         r.Prompt,
			GeneratedImage: nil,
		},
	}
	params := generationParams{
		Model:           r.SelectedModel,
		NegativePrompt:  *r.NegativePrompt,
		Enabled:         true,
		GrowSize:        *r.GrowSize,
		EdgeStrength:    *r.EdgeStrength,
		ColorStrength:   *r.ColorStrength,
		InpaintStrength: *r.InpaintStrength,
		Seed:            *r.Seed,
		Steps:           *r.Steps,
		Cfg:             *r.Cfg,
		Sampler:         r.Sampler,
		Scheduler:       r.Scheduler,
	}
	return append([]interface{}{bundle, frame}, params.positional()...)
}

// extractImage distinguish a response with no data array from one whose
// image slot is missing or not a string
func extractImage(respBody []byte) (string, error) {
	data := gjson.GetBytes(respBody, "data")
	if !data.Exists() || !data.IsArray() || len(data.Array()) == 0 {
		return "", errors.New("no valid image data returned")
	}
	image := gjson.GetBytes(respBody, generatedImagePath)
	if image.Type != gjson.String {
		return "", errors.New("unexpected image format")
	}
	return dataURIPrefix + image.String(), nil
}
