package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"detect-api/internal/domain/entity"
	"detect-api/internal/domain/port"
	"detect-api/internal/infrastructure/bitmap"
)

// Ошибки конвейера детекции. Транспортный слой сопоставляет их
// со статусами HTTP через errors.Is.
var (
	ErrModelNotLoaded = errors.New("model is not loaded")
	ErrNotAnImage     = errors.New("file is not an image")
	ErrImageDecode    = errors.New("image decode failed")
	ErrInference      = errors.New("inference failed")
)

// DetectionService управляет конвейером детекции объектов.
type DetectionService struct {
	engine        port.Engine
	ConfThreshold float64 // порог уверенности
	IoUThreshold  float64 // порог подавления пересечений
}

// NewDetectionService создаёт сервис детекции с порогами по умолчанию.
// Движок может быть nil: тогда каждый запрос завершается ErrModelNotLoaded.
func NewDetectionService(engine port.Engine) *DetectionService {
	return &DetectionService{
		engine:        engine,
		ConfThreshold: 0.25,
		IoUThreshold:  0.45,
	}
}

// Detect прогоняет загруженный файл через весь конвейер: доступность модели,
// проверка типа, декодирование, инференс, нормализация. Проверка доступности
// идёт первой, до любой попытки декодирования.
func (s *DetectionService) Detect(ctx context.Context, data []byte, contentType string) (*entity.DetectionResponse, error) {
	if s.engine == nil {
		return nil, ErrModelNotLoaded
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %q", ErrNotAnImage, contentType)
	}

	bmp, err := bitmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	raw, err := s.engine.Detect(ctx, bmp, s.ConfThreshold, s.IoUThreshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	predictions, err := normalizePredictions(raw, s.engine.Classes())
	if err != nil {
		return nil, err
	}

	return &entity.DetectionResponse{
		Predictions: predictions,
		Status:      entity.StatusSuccess,
	}, nil
}

// Health возвращает состояние сервиса и загруженной модели.
func (s *DetectionService) Health() entity.HealthStatus {
	status := entity.HealthStatus{Status: entity.StatusHealthy}
	if s.engine != nil {
		status.ModelLoaded = true
		status.ModelClasses = len(s.engine.Classes())
	}
	return status
}

// normalizePredictions переводит сырые боксы движка в клиентские записи.
// Порядок выдачи движка сохраняется, геометрия копируется без преобразований.
func normalizePredictions(raw []entity.RawDetection, names []string) ([]entity.Prediction, error) {
	predictions := make([]entity.Prediction, 0, len(raw))
	for _, det := range raw {
		if det.ClassID < 0 || det.ClassID >= len(names) {
			return nil, fmt.Errorf("engine returned class id %d outside class table of %d entries", det.ClassID, len(names))
		}
		predictions = append(predictions, entity.Prediction{
			ClassName:  names[det.ClassID],
			Confidence: det.Confidence,
			BBox:       [4]float64{det.CenterX, det.CenterY, det.Width, det.Height},
		})
	}
	return predictions, nil
}
