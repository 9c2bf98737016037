package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// requireID reads a positive integer argument. MCP clients send JSON numbers
// (float64) but some pass IDs as strings.
func requireID(req mcp.CallToolRequest, key string) (int64, error) {
	id, ok, err := optionalID(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	return id, nil
}

// optionalID is requireID for arguments that may be omitted.
func optionalID(req mcp.CallToolRequest, key string) (int64, bool, error) {
	raw, present := req.GetArguments()[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	var id int64
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, false, fmt.Errorf("argument %q must be an integer", key)
		}
		id = int64(v)
	case int:
		id = int64(v)
	case int64:
		id = v
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("argument %q must be an integer", key)
		}
		id = n
	default:
		return 0, false, fmt.Errorf("argument %q must be an integer", key)
	}
	if id <= 0 {
		return 0, false, fmt.Errorf("argument %q must be > 0", key)
	}
	return id, true, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
