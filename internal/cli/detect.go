package cli

import (
	"context"
	"errors"

	"github.com/yaklabco/goemmet/pkg/fsutil"
	"github.com/yaklabco/goemmet/pkg/syntaxdetect"
)

// syntaxFromTarget detects the expansion syntax for a target file.
// The file does not have to exist; the name alone is usually enough.
func syntaxFromTarget(ctx context.Context, path string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return syntaxdetect.Detect(path, nil), nil
		}
		return "", err
	}

	return syntaxdetect.Detect(path, content), nil
}
