// Package errmsg provides consistent error formatting for user-facing
// messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Search operations
	OpSearch       Op = "search places"
	OpRecentSave   Op = "save recent search"
	OpRecentsClear Op = "clear recent searches"

	// Bookmark operations
	OpBookmarkAdd    Op = "bookmark place"
	OpBookmarkRemove Op = "remove bookmark"
	OpBookmarksLoad  Op = "load bookmarks"

	// Save-list operations
	OpListCreate Op = "create save list"
	OpListAdd    Op = "add place to list"
	OpListsLoad  Op = "load save lists"

	// Initialization
	OpInitialize Op = "initialize application"
	OpStateOpen  Op = "open state database"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
