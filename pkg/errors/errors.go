package errors

// Error message constants for the importanize application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindPythonFiles = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgFilesNotOrganized       = "%d files have unorganized imports"

	// Import grammar errors
	ErrMsgEmptyStatement   = "import statement has no tokens"
	ErrMsgMissingStem      = "import statement has no module path"
	ErrMsgMissingSeparator = "from import has no import keyword between path and names"
	ErrMsgMissingLeaf      = "from import has no imported names"

	// Configuration errors
	ErrMsgFailedToLoadConfig = "failed to load config"

	// Info/warning messages
	InfoMsgNoPythonFilesFound = "No Python files found in directory: %s"
	InfoMsgFoundPythonFiles   = "Found %d Python files in directory: %s"
	InfoMsgLocalPackages      = "Local packages: %s"
	InfoMsgProcessedFiles     = "Processed: %s"
	InfoMsgErrorProcessing    = "Error processing %s: %v"
)
