package model

import (
	"path/filepath"
	"strings"
)

// FileInfo identifies the file being classified.
type FileInfo struct {
	Path string
	Name string
	Ext  string
}

// NewFileInfo builds a FileInfo from a path. Ext is lower-cased and
// includes the leading dot.
func NewFileInfo(path string) FileInfo {
	name := filepath.Base(path)
	return FileInfo{
		Path: path,
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
	}
}
