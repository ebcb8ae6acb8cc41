package output

import (
	"errors"
	"io/fs"
	"os"

	diffpatch "github.com/sourcegraph/go-diff-patch"
)

// Diff returns a unified diff from the current content of path to content.
// A missing file diffs as empty. Identical content yields "".
func Diff(path, content string) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if string(current) == content {
		return "", nil
	}
	return diffpatch.GeneratePatch(path, string(current), content), nil
}
