package testfilter

import (
	"bufio"
	"io"
	"strings"

	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/pkg/errors"
)

// ParseFilterFile reads testClass=sourceSet lines and groups the classes by source set,
// keeping file order. Blank lines and lines starting with # or ! are skipped.
func ParseFilterFile(r io.Reader) (map[string][]string, error) {
	classes := make(map[string][]string)
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		testClass, sourceSet, ok := strings.Cut(line, "=")
		testClass = strings.TrimSpace(testClass)
		sourceSet = strings.TrimSpace(sourceSet)
		if !ok || testClass == "" || sourceSet == "" {
			return nil, errors.Wrapf(errs.ErrInvalidFilterLine, "line %d: %q", lineNumber, line)
		}
		classes[sourceSet] = append(classes[sourceSet], testClass)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read filter file")
	}
	return classes, nil
}
