package core

import (
	"os"
	"path/filepath"
)

const DefaultBaseDir = ".hashime"

func GetBaseDir(dir string) string {
	if dir == "" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, DefaultBaseDir)
	}
	return dir
}

func GetPath(path string, base string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
