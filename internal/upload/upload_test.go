package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeFileHeader собирает настоящий multipart.FileHeader из сырого содержимого.
func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(MaxPhotoBytes + 1<<20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["photo"][0]
}

func TestSavePhotoContentAddressed(t *testing.T) {
	dir := t.TempDir()
	fh := makeFileHeader(t, "me.png", "image/png", []byte("fake png bytes"))

	ref, err := SavePhoto(fh, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(ref, "uploads/") || !strings.HasSuffix(ref, ".png") {
		t.Errorf("unexpected reference %q", ref)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.Base(ref))); err != nil {
		t.Errorf("stored file missing: %v", err)
	}

	// то же содержимое — то же имя
	again, err := SavePhoto(makeFileHeader(t, "other-name.png", "image/png", []byte("fake png bytes")), dir)
	if err != nil {
		t.Fatalf("save again: %v", err)
	}
	if again != ref {
		t.Errorf("same content produced %q and %q", ref, again)
	}
}

func TestSavePhotoRejectsNonImage(t *testing.T) {
	fh := makeFileHeader(t, "notes.txt", "text/plain", []byte("hello"))

	if _, err := SavePhoto(fh, t.TempDir()); !errors.Is(err, ErrNotImage) {
		t.Fatalf("err = %v, want ErrNotImage", err)
	}
}

func TestSavePhotoRejectsOversize(t *testing.T) {
	big := bytes.Repeat([]byte("a"), MaxPhotoBytes+1)
	fh := makeFileHeader(t, "big.jpg", "image/jpeg", big)

	if _, err := SavePhoto(fh, t.TempDir()); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}
