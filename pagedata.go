package rmdoc

import (
	"bufio"
	"io"
	"os"

	"github.com/akeil/rmdoc/internal/logging"
)

// Pagedata is the list of template names from the `.pagedata` file,
// one entry per page. An empty string means the page has no template.
type Pagedata []string

// LoadPagedata reads the pagedata file at the given path.
func LoadPagedata(path string) (Pagedata, error) {
	var pd Pagedata
	err := load(&pd, path)
	if err != nil {
		return nil, err
	}
	return pd, nil
}

func (p *Pagedata) load(path string) error {
	logging.Debug("Read pagedata from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return newError(StagePagedata, KindIO, path, err)
	}
	defer f.Close()

	pd, err := ReadPagedata(f)
	if err != nil {
		return newError(StagePagedata, KindIO, path, err)
	}

	*p = pd
	return nil
}

// ReadPagedata reads template names from r, one per line.
// Empty lines are kept, a trailing newline does not add an entry.
func ReadPagedata(r io.Reader) (Pagedata, error) {
	pd := make(Pagedata, 0)
	s := bufio.NewScanner(r)
	for s.Scan() {
		pd = append(pd, s.Text())
	}

	err := s.Err()
	if err != nil {
		return nil, err
	}

	return pd, nil
}
