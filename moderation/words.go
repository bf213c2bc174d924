package moderation

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"

	"teamforge/errors"
)

// LoadWords reads every .txt file under dir in fsys and returns the
// deduplicated word list, one word per line. Blank lines and lines
// starting with '#' are skipped. Each file holds one language, so an
// operator can drop in extra dictionaries without a rebuild.
func LoadWords(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// A scanner copes with both \n and \r\n endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			unique[line] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}
