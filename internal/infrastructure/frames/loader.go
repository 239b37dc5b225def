// Package frames читает кадры из файлов и байтов вместо камеры.
package frames

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"insert-inspector/internal/infrastructure/vision"
)

// ErrEmptyFrame кадр без пикселей
var ErrEmptyFrame = errors.New("empty frame")

// LoadGray читает файл изображения и переводит его в оттенки серого
func LoadGray(path string) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", path, err)
	}
	return toFrame(img)
}

// DecodeGray декодирует изображение (JPEG, PNG, ...) из байтов
func DecodeGray(data []byte) (*image.Gray, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFrame
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return toFrame(img)
}

func toFrame(img image.Image) (*image.Gray, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}
	return vision.ToGray(imaging.Grayscale(img)), nil
}
