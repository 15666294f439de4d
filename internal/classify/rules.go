package classify

// The rule sets below are the single source of truth for what the cleaner
// may and may not touch. Preserve rules always win over clean rules.

// preserveExact lists key names that mark a subtree as user-critical
// wherever they appear: settings blocks and integration (MCP) configuration.
var preserveExact = map[string]struct{}{
	"settings":     {},
	"mcp_configs":  {},
	"mcpServers":   {},
	"userSettings": {},
}

// preserveSubstrings lists lowercase fragments that mark credential-bearing
// keys. Matched case-insensitively against each path segment.
var preserveSubstrings = []string{
	"key",
	"token",
	"credential",
}

// projectCleanable lists conversational/cache field names cleanable inside a
// project record, i.e. at projects.<id>.<name>.
var projectCleanable = map[string]struct{}{
	"history":        {},
	"conversation":   {},
	"messages":       {},
	"chat":           {},
	"conversations":  {},
	"messageHistory": {},
	"chatHistory":    {},
	"contextCache":   {},
}

// rootCleanable lists conversational/cache field names cleanable at the
// document's top level.
var rootCleanable = map[string]struct{}{
	"globalHistory":       {},
	"globalMessages":      {},
	"conversations":       {},
	"recentConversations": {},
	"conversationCache":   {},
	"chatCache":           {},
}
