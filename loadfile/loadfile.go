// Package loadfile provides functions to load step definition files from code paths.
package loadfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ContextFile is a definition file whose absolute file path and content
// need to be referenced at some point during execution.
type ContextFile struct {
	// ID is the code path the file was found through.
	ID           string
	AbsolutePath string
	Content      []byte
}

// ResolvePath returns the absolute path of a code path. Relative code paths
// are resolved against rootDir.
func ResolvePath(rootDir string, codePath string) (string, error) {
	if filepath.IsAbs(codePath) {
		return filepath.Clean(codePath), nil
	}
	absDir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", fmt.Errorf("error determining context directory absolute path %s (%w)", rootDir, err)
	}
	return filepath.Join(absDir, codePath), nil
}

// LoadDefinitionFiles reads every file whose name ends in one of the given
// extensions, e.g. ".steps.yaml", found under the code paths. A code path may be a single file or a directory,
// which is searched recursively. Code paths that do not exist are skipped as
// they may be meant for a different backend.
//
// Files are returned in code path order, files of a directory in lexical
// order. A file reachable through more than one code path is returned only
// once, at its first position.
func LoadDefinitionFiles(rootDir string, codePaths []string, extensions ...string) ([]ContextFile, error) {
	var result []ContextFile
	seen := map[string]struct{}{}
	for _, codePath := range codePaths {
		absPath, err := ResolvePath(rootDir, codePath)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error reading code path %s (%w)", codePath, err)
		}
		var candidates []string
		if info.IsDir() {
			candidates, err = listFiles(absPath, extensions)
			if err != nil {
				return nil, fmt.Errorf("error listing code path %s (%w)", codePath, err)
			}
		} else if hasExtension(absPath, extensions) {
			candidates = []string{absPath}
		}
		for _, candidate := range candidates {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			content, err := os.ReadFile(filepath.Clean(candidate))
			if err != nil {
				return nil, fmt.Errorf("error reading file %s (%w)", candidate, err)
			}
			result = append(result, ContextFile{
				ID:           codePath,
				AbsolutePath: candidate,
				Content:      content,
			})
		}
	}
	return result, nil
}

func listFiles(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Only regular files are read, anything else the os cannot read
		// as a file is disregarded.
		if !d.Type().IsRegular() {
			return nil
		}
		if hasExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	name := strings.ToLower(filepath.Base(path))
	for _, e := range extensions {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}
