package models

import "github.com/paintover/inpaint-proxy-api/pkg/config"

// InpaintRequest inbound body of POST /api/process-image. Numeric
// parameters are pointers so an explicit zero is distinguishable from an
// omitted field.
type InpaintRequest struct {
	UploadedImage   string   `json:"uploadedImage"`
	Selection       string   `json:"selection,omitempty"`
	Prompt          string   `json:"prompt"`
	NegativePrompt  *string  `json:"negativePrompt,omitempty"`
	SelectedModel   string   `json:"selectedModel,omitempty"`
	Steps           *int     `json:"steps,omitempty"`
	Cfg             *float64 `json:"cfg,omitempty"`
	GrowSize        *int     `json:"growSize,omitempty"`
	Sampler         string   `json:"sampler,omitempty"`
	Scheduler       string   `json:"scheduler,omitempty"`
	Seed            *int64   `json:"seed,omitempty"`
	EdgeStrength    *float64 `json:"edgeStrength,omitempty"`
	ColorStrength   *float64 `json:"colorStrength,omitempty"`
	InpaintStrength *float64 `json:"inpaintStrength,omitempty"`
}

// InpaintResponse outbound body, success or failure variant
type InpaintResponse struct {
	Success        bool        `json:"success"`
	GeneratedImage string      `json:"generatedImage,omitempty"`
	Error          string      `json:"error,omitempty"`
	Details        interface{} `json:"details,omitempty"`
}

type LivenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Validate check the two required fields, other fields all have defaults
func (r *InpaintRequest) Validate() bool {
	return r.UploadedImage != "" && r.Prompt != ""
}

// ApplyDefaults fill omitted parameters with the deployment defaults
func (r *InpaintRequest) ApplyDefaults() {
	if r.Selection == "" {
		r.Selection = r.UploadedImage
	}
	if r.NegativePrompt == nil {
		r.NegativePrompt = strPtr(config.DEFAULT_NEGATIVE_PROMPT)
	}
	if r.SelectedModel == "" {
		r.SelectedModel = config.DEFAULT_MODEL
	}
	if r.Steps == nil {
		r.Steps = intPtr(config.DEFAULT_STEPS)
	}
	if r.Cfg == nil {
		r.Cfg = floatPtr(config.DEFAULT_CFG)
	}
	if r.GrowSize == nil {
		r.GrowSize = intPtr(config.DEFAULT_GROW_SIZE)
	}
	if r.Sampler == "" {
		r.Sampler = config.DEFAULT_SAMPLER
	}
	if r.Scheduler == "" {
		r.Scheduler = config.DEFAULT_SCHEDULER
	}
	if r.Seed == nil {
		seed := int64(config.DEFAULT_SEED)
		r.Seed = &seed
	}
	if r.EdgeStrength == nil {
		r.EdgeStrength = floatPtr(config.DEFAULT_EDGE_STRENGTH)
	}
	if r.ColorStrength == nil {
		r.ColorStrength = floatPtr(config.DEFAULT_COLOR_STRENGTH)
	}
	if r.InpaintStrength == nil {
		r.InpaintStrength = floatPtr(config.DEFAULT_INPAINT_STRENGTH)
	}
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
