package utils

import (
	"os"
	"path/filepath"
)

// GetPathInfo resolves relPath to an absolute path and its parent directory.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// ExpandArgs resolves each argument to an absolute path. Directory arguments
// are replaced by the regular files directly inside them that end in ext.
func ExpandArgs(args []string, ext string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fullPath, _, err := GetPathInfo(arg)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(fullPath)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, fullPath)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(fullPath, "*"+ext))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}
