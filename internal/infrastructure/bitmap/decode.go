package bitmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"detect-api/internal/domain/entity"
)

// Decode превращает байты загруженного файла в bitmap с фиксированным
// порядком каналов RGB. Исходная цветовая модель может быть любой из
// поддерживаемых декодеров: серые, палитровые и полупрозрачные изображения
// приводятся к трём каналам.
func Decode(data []byte) (*entity.Bitmap, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	// imaging.Clone всегда возвращает NRGBA независимо от исходной модели.
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	bm := entity.NewBitmap(bounds.Dx(), bounds.Dy())
	src := nrgba.Pix
	for i, j := 0, 0; i < len(src); i, j = i+4, j+3 {
		bm.Pix[j] = src[i]
		bm.Pix[j+1] = src[i+1]
		bm.Pix[j+2] = src[i+2]
	}

	return bm, nil
}

// decodeImage декодирует байты стандартным путём, затем пробует WebP напрямую.
func decodeImage(data []byte) (image.Image, error) {
	reader := bytes.NewReader(data)
	if img, _, err := image.Decode(reader); err == nil {
		return img, nil
	}

	reader = bytes.NewReader(data)
	if img, err := webp.Decode(reader); err == nil {
		return img, nil
	}

	return nil, fmt.Errorf("image: unknown or unsupported format")
}
