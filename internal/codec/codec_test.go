package codec

import (
	"bytes"
	"io"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	codecs := []Codec{Noop{}, Gzip{}, Zstd{}}
	payload := []byte("/renders/shot.1.exr\n/renders/shot.2.exr\n/renders/shot.3.exr\n")

	for _, c := range codecs {
		t.Run("ext_"+c.Extension(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := c.Writer(&buf)
			if err != nil {
				t.Fatalf("Writer() error = %v", err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			r, err := c.Reader(&buf)
			if err != nil {
				t.Fatalf("Reader() error = %v", err)
			}
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("round trip = %q, want %q", got, payload)
			}
		})
	}
}

// closeRecorder reports whether Close was ever called on it.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCloseLeavesUnderlyingOpen(t *testing.T) {
	for _, c := range []Codec{Noop{}, Gzip{}, Zstd{}} {
		t.Run("ext_"+c.Extension(), func(t *testing.T) {
			var rec closeRecorder
			w, err := c.Writer(&rec)
			if err != nil {
				t.Fatalf("Writer() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if rec.closed {
				t.Errorf("closing the %q writer closed the underlying stream", c.Extension())
			}

			rec.closed = false
			r, err := c.Reader(&rec)
			if err != nil {
				t.Fatalf("Reader() error = %v", err)
			}
			if err := r.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if rec.closed {
				t.Errorf("closing the %q reader closed the underlying stream", c.Extension())
			}
		})
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"frames.txt.zst", "zst"},
		{"frames.txt.gz", "gz"},
		{"frames.txt", ""},
		{"frames", ""},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path).Extension(); got != tt.want {
			t.Errorf("ForPath(%q).Extension() = %q, want %q", tt.path, got, tt.want)
		}
	}
}
