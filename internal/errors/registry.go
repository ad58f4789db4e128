package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Explain  string
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Failed to load configuration",
		Explain:  "The configuration file exists but could not be read.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Failed to parse configuration",
		Explain:  "slotkit.yaml is not valid YAML or a value has the wrong type.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Explain:  "A configuration value is out of range or not one of the allowed values.",
	},

	// ============================================
	// Slot Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategorySlot,
		Message:  "Region filled more than once",
		Explain:  "More than one child was tagged with the same region. Only the first is rendered.",
	},
	"E202": {
		Category: CategorySlot,
		Message:  "Child not assigned to any region",
		Explain:  "A layout child carries no region marker of this layout and will not be rendered.",
	},
	"E203": {
		Category: CategorySlot,
		Message:  "Required region missing",
		Explain:  "The layout was configured to require this region but no child filled it.",
	},

	// ============================================
	// Document Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryDocument,
		Message:  "Failed to read document",
		Explain:  "The page document could not be opened or read.",
	},
	"E302": {
		Category: CategoryDocument,
		Message:  "Failed to parse document",
		Explain:  "The page document is not valid YAML or its frontmatter is malformed.",
	},
	"E303": {
		Category: CategoryDocument,
		Message:  "Unsupported document format",
		Explain:  "Documents must be .yaml, .yml, .md or .markdown files, and sections must use text, html or markdown.",
	},

	// ============================================
	// Publish Errors (E401-E499)
	// ============================================

	"E401": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Explain:  "The object store rejected or failed the upload.",
	},
	"E402": {
		Category: CategoryPublish,
		Message:  "Bucket not configured",
		Explain:  "Publishing needs a bucket from --bucket or publish.bucket.",
	},

	// ============================================
	// Server Errors (E501-E599)
	// ============================================

	"E501": {
		Category: CategoryServer,
		Message:  "Server failed",
		Explain:  "The preview server could not listen or stopped with an error.",
	},
}
