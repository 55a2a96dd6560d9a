package provider

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// SystemClipboard reads copied items from the system clipboard as text. File
// managers put one path or file:// URI per line.
type SystemClipboard struct{}

func (SystemClipboard) Items() ([]string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}

	return ParseItems(text), nil
}

// ParseItems splits clipboard text into items. Blank lines and text/uri-list
// comments are dropped and file:// URIs become local paths.
func ParseItems(text string) []string {
	var items []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		items = append(items, fromURI(line))
	}

	return items
}

func fromURI(item string) string {
	u, err := url.Parse(item)
	if err != nil || u.Scheme != "file" {
		return item
	}

	path := u.Path
	if runtime.GOOS == "windows" {
		// file:///C:/data parses to /C:/data
		path = strings.TrimPrefix(path, "/")
		if u.Host != "" && u.Host != "localhost" {
			path = `\\` + u.Host + `\` + path
		}
	}

	return filepath.FromSlash(path)
}

// Items is a fixed clipboard, for targets given on the command line.
type Items []string

func (i Items) Items() ([]string, error) {
	return append([]string(nil), i...), nil
}

// Folder is a site at a fixed folder. An empty Folder means the working
// directory. Relative folders are made absolute.
type Folder string

func (f Folder) CurrentFolder() (string, error) {
	if f == "" {
		return os.Getwd()
	}

	return filepath.Abs(string(f))
}
