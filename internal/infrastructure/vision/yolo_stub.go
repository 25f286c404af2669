//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"detect-api/internal/domain/entity"
	"detect-api/internal/domain/port"
)

var _ port.Engine = (*YOLOEngine)(nil)

// YOLOEngine — заглушка движка (сборка без OpenCV).
type YOLOEngine struct {
	classes []string
}

// Load возвращает ошибку, если сборка без тега gocv.
func Load(modelPath, classesPath string) (*YOLOEngine, error) {
	_ = modelPath
	_ = classesPath
	return nil, errors.New("gocv build tag is not enabled")
}

// Classes возвращает таблицу имён классов.
func (e *YOLOEngine) Classes() []string {
	return e.classes
}

// Close освобождает ресурсы движка.
func (e *YOLOEngine) Close() error {
	return nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (e *YOLOEngine) Detect(ctx context.Context, bmp *entity.Bitmap, confThreshold, iouThreshold float64) ([]entity.RawDetection, error) {
	_ = ctx
	_ = bmp
	_ = confThreshold
	_ = iouThreshold
	return nil, errors.New("gocv build tag is not enabled")
}
