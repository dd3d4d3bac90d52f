package main

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/filescan/internal/config"
	"github.com/taigrr/filescan/internal/iniconv"
	"github.com/taigrr/filescan/internal/report"
	"github.com/taigrr/filescan/internal/types"
	"github.com/taigrr/filescan/internal/uri"
)

func handleScan(ctx context.Context, req *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	dir, err := config.ExpandHome(strings.TrimSpace(input.Directory))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, err
	}

	scanReq := types.ScanRequest{
		Root:      dir,
		Extension: strings.TrimSpace(input.Extension),
		Depth:     input.Depth,
	}

	res, err := scanService.Scan(scanReq)
	if err != nil {
		msg, _ := report.DiagnosticMessage(scanReq, err)
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, errors.New(msg)
	}

	matches := make([]ScanMatch, 0, len(res.Matches))
	for _, m := range res.Matches {
		matches = append(matches, ScanMatch{
			Path:  m.Path,
			Name:  m.Name,
			Stem:  m.Stem,
			Depth: m.Depth,
			URI:   uri.FileURI(m.Path),
		})
	}

	var skipped []string
	for _, sd := range res.Skipped {
		skipped = append(skipped, sd.Path)
	}

	return nil, ScanOutput{
		Matches: matches,
		Skipped: skipped,
		Report:  report.Format(res),
	}, nil
}

func handleINIToJSON(ctx context.Context, req *mcp.CallToolRequest, input INIToJSONInput) (*mcp.CallToolResult, INIToJSONOutput, error) {
	in := strings.TrimSpace(input.Input)
	if in == "" {
		return &mcp.CallToolResult{IsError: true}, INIToJSONOutput{}, errors.New("input cannot be empty")
	}

	out := strings.TrimSpace(input.Output)
	if out == "" {
		out = jsonPathFor(in)
	}

	sections, err := iniconv.Convert(in, out)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, INIToJSONOutput{Success: false, Output: out}, err
	}

	return nil, INIToJSONOutput{Success: true, Output: out, Sections: sections}, nil
}

func handleExtensions(ctx context.Context, req *mcp.CallToolRequest, input ExtensionsInput) (*mcp.CallToolResult, ExtensionsOutput, error) {
	return nil, ExtensionsOutput{Extensions: pathFilter.Extensions()}, nil
}
