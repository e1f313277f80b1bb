package pdf

import (
	"errors"
	"os"

	"github.com/skratchdot/open-golang/open"
)

// Viewer opens exported files with the desktop's default application.
type Viewer struct {
	start func(path string) error
}

func NewViewer() *Viewer {
	return &Viewer{start: open.Start}
}

// Open does nothing when the file does not exist.
func (v *Viewer) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return v.start(path)
}
