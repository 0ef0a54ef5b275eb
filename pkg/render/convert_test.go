package render

import (
	"context"
	"testing"

	"github.com/matzehuels/treestack/pkg/errors"
)

func TestConvertMissingBinary(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "treestack-no-such-converter"
	defer func() { rsvgBinary = old }()

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	if _, err := ToPDF(context.Background(), svg); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
	if _, err := ToPNG(context.Background(), svg, 2); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
}
