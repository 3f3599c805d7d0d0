package fragments

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"champstandingsbot/pkg/standings"

	"github.com/pkg/errors"
)

const fragmentExtension = ".json"

// Load reads every fragment file in dir (discovery order, i.e. directory
// name order) and concatenates their class blocks. Files without the
// fragment extension are skipped. Any unreadable or undecodable fragment
// fails the whole load; there is no partial-success mode.
func Load(dir string) (classes []standings.ClassStandings, files int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "listing fragments directory %q", dir)
	}

	classes = []standings.ClassStandings{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), fragmentExtension) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "reading fragment %q", path)
		}
		var fragment []standings.ClassStandings
		if err := json.Unmarshal(data, &fragment); err != nil {
			return nil, 0, errors.Wrapf(err, "decoding fragment %q", path)
		}
		classes = append(classes, fragment...)
		files++
	}
	return classes, files, nil
}
