package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// MaxPhotoBytes — лимит размера фото профиля.
const MaxPhotoBytes = 5 << 20

var (
	ErrNotImage = errors.New("uploaded file is not an image")
	ErrTooLarge = errors.New("uploaded file exceeds the size limit")
)

// SavePhoto сохраняет загруженное изображение под именем, выведенным из
// содержимого файла (sha256), и возвращает относительный путь для User.Photo.
// Одинаковое содержимое даёт одинаковое имя, поэтому гонок при
// одновременной загрузке нет.
func SavePhoto(fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > MaxPhotoBytes {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxPhotoBytes {
		return "", ErrTooLarge
	}

	sum := sha256.Sum256(data)
	name := hex.EncodeToString(sum[:])[:16] + strings.ToLower(filepath.Ext(fh.Filename))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, name)
	if _, err := os.Stat(dst); err != nil {
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return "", err
		}
	}

	return path.Join("uploads", name), nil
}
