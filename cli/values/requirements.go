package values

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tarantool/populate/cli/util"
)

const (
	// RequirementsFile lists runtime dependencies.
	RequirementsFile = "requirements.txt"
	// TestRequirementsFile lists test-only dependencies.
	TestRequirementsFile = "requirements_test.txt"
)

var commentRe = regexp.MustCompile(`#.*`)

// ReadRequirements reads dependency specifiers, one per line. Comments,
// blank lines and included files (-r other.txt) are skipped.
func ReadRequirements(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}
	defer file.Close()

	requirements := []string{}
	scanner := util.FileLinesScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(commentRe.ReplaceAllString(scanner.Text(), ""))
		if line == "" || strings.HasPrefix(line, "-r") {
			continue
		}
		requirements = append(requirements, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return requirements, nil
}
