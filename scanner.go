package funicular

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a class string found in a source file
type ClassReference struct {
	FullClassValue string       // Full value: "flex flex-col sm:flex-row"
	Location       FileLocation // Where it was found
	Explicit       bool         // Found in a class context rather than a bare string literal
}

// Tokens splits the reference into its class tokens
func (r ClassReference) Tokens() []string {
	return strings.Fields(r.FullClassValue)
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the first token
	Text   string // Line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

type scanPattern struct {
	name     string
	regex    *regexp.Regexp
	explicit bool
}

var (
	// Ordered from most specific to least specific; the loose literal pattern
	// only runs on lines where nothing explicit matched.
	patterns = []scanPattern{
		{
			name:     "class attribute, double quotes",
			regex:    regexp.MustCompile(`class="([^"]+)"`),
			explicit: true,
		},
		{
			name:     "class attribute, single quotes",
			regex:    regexp.MustCompile(`class='([^']+)'`),
			explicit: true,
		},
		{
			name:     "markup.Class call",
			regex:    regexp.MustCompile(`Class\(\s*"([^"]+)"`),
			explicit: true,
		},
		{
			name:     "markup.Class call, raw string",
			regex:    regexp.MustCompile("Class\\(\\s*`([^`]+)`"),
			explicit: true,
		},
	}

	literalPattern = regexp.MustCompile(`"([^"\\]+)"`)

	commentPattern = regexp.MustCompile(`^\s*(//|<!--)`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGeneratedSource reports files produced by code generators
func isGeneratedSource(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".gen.go") ||
		strings.HasSuffix(path, "_test.go")
}

// loadGitIgnore loads .gitignore from the working directory once.
// A missing file disables ignore filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile filters generated sources, then gitignored relative paths
func shouldSkipFile(path string) bool {
	if isGeneratedSource(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project ignore rules
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class references.
// Unreadable files are skipped.
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			stats.FilesSkipped++
			stats.FilesScanned--
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands doublestar patterns to files, in pattern order
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// findClassColumn locates the 1-based column of the first token of value
// at or after offset
func findClassColumn(line string, value string, offset int) int {
	target := value
	if tokens := strings.Fields(value); len(tokens) > 0 {
		target = tokens[0]
	}
	if offset < 0 || offset > len(line) {
		offset = 0
	}

	if idx := strings.Index(line[offset:], target); idx != -1 {
		return offset + idx + 1
	}
	if idx := strings.Index(line, target); idx != -1 {
		return idx + 1
	}
	return 0
}

// extractClassesFromLine extracts all class references from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	text := strings.TrimRight(line, " \t\r")

	newRef := func(value string, start int, explicit bool) ClassReference {
		return ClassReference{
			FullClassValue: value,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: findClassColumn(line, value, start),
				Text:   text,
			},
			Explicit: explicit,
		}
	}

	var refs []ClassReference
	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}
			value := line[match[2]:match[3]]
			if strings.TrimSpace(value) == "" {
				continue
			}
			refs = append(refs, newRef(value, match[2], pattern.explicit))
		}
	}
	if len(refs) > 0 {
		return refs
	}

	// Go sources keep shared class lists in string constants
	if !strings.HasSuffix(file, ".go") {
		return nil
	}
	for _, match := range literalPattern.FindAllStringSubmatchIndex(line, -1) {
		value := line[match[2]:match[3]]
		if strings.TrimSpace(value) == "" {
			continue
		}
		refs = append(refs, newRef(value, match[2], false))
	}
	return refs
}

// GetRelativePath returns a path relative to the working directory when possible
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
