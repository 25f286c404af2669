package port

import (
	"context"

	"detect-api/internal/domain/entity"
)

// Engine интерфейс движка детекции объектов. Реализация неизменяема после
// загрузки и должна допускать конкурентные вызовы Detect.
type Engine interface {
	// Detect выполняет инференс по изображению с порогом уверенности и порогом
	// подавления пересечений. Геометрия результата остаётся в пикселях
	// исходного изображения, порядок записей — порядок выдачи движка.
	Detect(ctx context.Context, bmp *entity.Bitmap, confThreshold, iouThreshold float64) ([]entity.RawDetection, error)

	// Classes возвращает таблицу имён классов (индекс = ClassID).
	Classes() []string
}
