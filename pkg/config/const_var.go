package config

// env key
const (
	PORT = "PORT"
)

// remote deployment
const (
	DEFAULT_SD_ENDPOINT   = "https://paintover-magic-inpaint.hf.space"
	DEFAULT_MAX_BODY_SIZE = 100 << 20 // 100MB, embedded base64 image data
)

// generation parameter defaults, must match the hosted deployment exactly
const (
	DEFAULT_MODEL            = "SD1.5/realisticVisionV60B1_v51VAE.safetensors"
	DEFAULT_STEPS            = 20
	DEFAULT_CFG              = 5.0
	DEFAULT_GROW_SIZE        = 15
	DEFAULT_SAMPLER          = "euler_ancestral"
	DEFAULT_SCHEDULER        = "karras"
	DEFAULT_SEED             = -1
	DEFAULT_EDGE_STRENGTH    = 0.55
	DEFAULT_COLOR_STRENGTH   = 0.55
	DEFAULT_INPAINT_STRENGTH = 1.0
	DEFAULT_NEGATIVE_PROMPT  = ""
)

// ERROR message
const (
	INTERNALERROR = "Internal Server Error"
	MISSINGPARAMS = "Missing required parameters"
)
