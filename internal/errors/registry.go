package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E101-E109)
	// ============================================

	"E101": {
		Category: CategoryValidation,
		Message:  "Invalid project name",
		Detail:   "Project names may only contain letters, numbers, spaces, hyphens, and underscores.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryValidation,
		Message:  "Invalid SEO template",
		Detail:   "The SEO template file did not pass validation. Every violation is listed above.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryValidation,
		Message:  "Unknown component library",
		Detail:   "The requested component library is not in the registry.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E103",
	},

	// ============================================
	// Config Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryConfig,
		Message:  "Could not parse SEO template file",
		Detail:   "The template file is not valid JSON.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E110",
	},
	"E111": {
		Category: CategoryConfig,
		Message:  "Could not read settings file",
		Detail:   "The .stencilrc.json file exists but could not be read or parsed.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E111",
	},
	"E112": {
		Category: CategoryConfig,
		Message:  "Could not read package manifest",
		Detail:   "package.json is missing or unreadable in the project directory.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E112",
	},

	// ============================================
	// Exec Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryExec,
		Message:  "Package installation failed",
		Detail:   "The package manager exited with a non-zero status.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryExec,
		Message:  "Scaffold command failed",
		Detail:   "A component scaffolding command exited with a non-zero status.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E121",
	},

	// ============================================
	// CLI Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryCLI,
		Message:  "Prompt read failed",
		Detail:   "Could not read a line from standard input.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E130",
	},
	"E131": {
		Category: CategoryCLI,
		Message:  "Layout patch failed",
		Detail:   "The root layout file could not be updated.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E131",
	},
	"E132": {
		Category: CategoryCLI,
		Message:  "Could not write generated files",
		Detail:   "A generated file could not be written to the project directory.",
		DocURL:   "https://stencil-kit.dev/docs/errors/E132",
	},
}
