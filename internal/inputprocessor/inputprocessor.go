package inputprocessor

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"parley/internal/util"
)

// Resolver turns a CLI prompt argument into prompt text. Three forms
// are accepted: "-" reads stdin, "@path" reads a file, anything else
// is the prompt itself.
type Resolver interface {
	Resolve(input string) (string, error)
}

// New creates the default resolver implementation.
func New() Resolver {
	return &defaultResolver{stdin: os.Stdin}
}

type defaultResolver struct {
	stdin io.Reader
}

func (r *defaultResolver) Resolve(input string) (string, error) {
	switch {
	case input == "-":
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		return util.CleanPromptContent(data, "stdin")

	case strings.HasPrefix(input, "@"):
		path := strings.TrimPrefix(input, "@")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file %q: %w", path, err)
		}
		log.Debugf("Read prompt from file %s (%d bytes)", path, len(data))
		return util.CleanPromptContent(data, path)

	default:
		return input, nil
	}
}
