package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ScanInput contains parameters for scanning a directory.
	ScanInput struct {
		Directory string `json:"directory" jsonschema:"Directory to scan (absolute, relative to the server's working directory, or starting with ~)"`
		Extension string `json:"extension" jsonschema:"Extension to match including the dot, e.g. .pdf"`
		Depth     int    `json:"depth,omitempty" jsonschema:"Levels of subdirectories to scan: 0 = directory only (default), N = N levels, -1 = unlimited"`
	}

	// ScanMatch is a file found by a scan.
	ScanMatch struct {
		Path  string `json:"path"`
		Name  string `json:"name"`
		Stem  string `json:"stem"`
		Depth int    `json:"depth"`
		URI   string `json:"uri"`
	}

	// ScanOutput contains the result of a scan.
	ScanOutput struct {
		Matches []ScanMatch `json:"matches"`
		Skipped []string    `json:"skipped,omitempty"`
		Report  string      `json:"report"`
	}

	// INIToJSONInput contains parameters for converting an INI file.
	INIToJSONInput struct {
		Input  string `json:"input" jsonschema:"Path of the INI file to read"`
		Output string `json:"output,omitempty" jsonschema:"Path of the JSON file to write (default: input with .json extension)"`
	}

	// INIToJSONOutput contains the result of a conversion.
	INIToJSONOutput struct {
		Success  bool   `json:"success"`
		Output   string `json:"output"`
		Sections int    `json:"sections"`
	}

	// ExtensionsInput contains parameters for listing known extensions.
	ExtensionsInput struct{}

	// ExtensionsOutput lists the extensions that can be scanned.
	ExtensionsOutput struct {
		Extensions []string `json:"extensions"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "List files with the given extension in a directory, down to the requested depth. Returns full paths, names, stems and a printable report. Unreadable subdirectories are skipped and listed.",
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ini_to_json",
		Description: "Convert an INI file to JSON with booleans, integers and floats inferred from the values.",
	}, handleINIToJSON)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extensions",
		Description: "List the file extensions the scan tool accepts.",
	}, handleExtensions)
}
