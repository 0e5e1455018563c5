//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearch,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSearch,
			err:      errors.New("index unavailable"),
			expected: "Failed to search places: index unavailable",
		},
		{
			name:     "bookmark operation",
			op:       OpBookmarkAdd,
			err:      errors.New("database is locked"),
			expected: "Failed to bookmark place: database is locked",
		},
		{
			name:     "list operation",
			op:       OpListCreate,
			err:      errors.New("already exists"),
			expected: "Failed to create save list: already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpListAdd,
			context:  "Harbor Walks",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpListAdd,
			context:  "Harbor Walks",
			err:      errors.New("list not found"),
			expected: "Failed to add place to list 'Harbor Walks': list not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpListAdd,
			context:  "",
			err:      errors.New("list not found"),
			expected: "Failed to add place to list: list not found",
		},
		{
			name:     "state open with path context",
			op:       OpStateOpen,
			context:  "/home/user/.local/share/mapdeck/mapdeck.db",
			err:      errors.New("permission denied"),
			expected: "Failed to open state database '/home/user/.local/share/mapdeck/mapdeck.db': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpSearch, OpRecentSave, OpRecentsClear,
		OpBookmarkAdd, OpBookmarkRemove, OpBookmarksLoad,
		OpListCreate, OpListAdd, OpListsLoad,
		OpInitialize, OpStateOpen,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
