package manifest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sequencekit/framespec/internal/codec"
)

func TestReader_Read_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.txt")
	content := "# render batch 42\n/renders/shot.1.exr\n\n/renders/shot.2.exr\n  /renders/shot.3.exr  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []string{"/renders/shot.1.exr", "/renders/shot.2.exr", "/renders/shot.3.exr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestReader_Read_CompressedFile(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{"gz", "zst"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "frames.txt."+ext)

			var buf bytes.Buffer
			w, err := codec.ForPath(path).Writer(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := w.Write([]byte("/renders/shot.1.exr\n/renders/shot.2.exr\n")); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := New().Read(context.Background(), path)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			want := []string{"/renders/shot.1.exr", "/renders/shot.2.exr"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Read() = %v, want %v", got, want)
			}
		})
	}
}

func TestReader_Read_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("/renders/shot.1.exr\n/renders/shot.2.exr\n"))
	}))
	defer srv.Close()

	got, err := New().Read(context.Background(), srv.URL+"/frames.txt")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"/renders/shot.1.exr", "/renders/shot.2.exr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestReader_Read_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := New().Read(context.Background(), srv.URL+"/missing.txt"); err == nil {
		t.Error("Read() error = nil, want error for 404")
	}
}

func TestWithTimeout_KeepsTransport(t *testing.T) {
	r := New(WithTimeout(5 * time.Second))

	if r.client.Timeout != 5*time.Second {
		t.Errorf("client.Timeout = %v, want 5s", r.client.Timeout)
	}
	tr, ok := r.client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("client.Transport = %T, want *http.Transport", r.client.Transport)
	}
	if tr.ResponseHeaderTimeout != DefaultResponseHeaderTimeout {
		t.Errorf("ResponseHeaderTimeout = %v, want %v", tr.ResponseHeaderTimeout, DefaultResponseHeaderTimeout)
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	if _, err := New().Read(context.Background(), filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Read() error = nil, want error for missing file")
	}
}
