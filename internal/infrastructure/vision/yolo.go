//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"detect-api/internal/domain/entity"
	"detect-api/internal/domain/port"
)

// inputSize — сторона квадратного входа сети.
const inputSize = 640

var _ port.Engine = (*YOLOEngine)(nil)

// YOLOEngine выполняет инференс YOLO-модели через DNN-модуль OpenCV.
type YOLOEngine struct {
	net     gocv.Net
	classes []string
}

// Load загружает веса модели и таблицу классов с диска.
func Load(modelPath, classesPath string) (*YOLOEngine, error) {
	classes, err := LoadClasses(classesPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model weights: %w", err)
	}

	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to read network from %s", modelPath)
	}

	return &YOLOEngine{net: net, classes: classes}, nil
}

// Classes возвращает таблицу имён классов.
func (e *YOLOEngine) Classes() []string {
	return e.classes
}

// Close освобождает ресурсы сети.
func (e *YOLOEngine) Close() error {
	return e.net.Close()
}

// Detect прогоняет изображение через сеть и возвращает боксы после
// подавления пересечений, в пикселях исходного изображения.
func (e *YOLOEngine) Detect(ctx context.Context, bmp *entity.Bitmap, confThreshold, iouThreshold float64) ([]entity.RawDetection, error) {
	_ = ctx

	if bmp == nil || len(bmp.Pix) == 0 {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.NewMatFromBytes(bmp.Height, bmp.Width, gocv.MatTypeCV8UC3, bmp.Pix)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	// Вход сети — квадрат inputSize×inputSize, значения каналов в [0, 1].
	// Каналы bitmap уже в порядке RGB, поэтому swapRB не нужен.
	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(inputSize, inputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	e.net.SetInput(blob, "")
	out := e.net.Forward("")
	defer out.Close()

	return e.decodeOutput(out, bmp.Width, bmp.Height, float32(confThreshold), float32(iouThreshold))
}

// decodeOutput разбирает выход формата YOLOv8: [1, 4+nc, N], где первые
// четыре строки — центр и размеры бокса в координатах входа сети.
func (e *YOLOEngine) decodeOutput(out gocv.Mat, imgWidth, imgHeight int, confThreshold, iouThreshold float32) ([]entity.RawDetection, error) {
	sizes := out.Size()
	if len(sizes) != 3 || sizes[0] != 1 || sizes[1] != len(e.classes)+4 {
		return nil, fmt.Errorf("unexpected network output shape %v, want [1 %d N]", sizes, len(e.classes)+4)
	}
	rows := sizes[1]
	cols := sizes[2]

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, err
	}

	scaleX := float64(imgWidth) / float64(inputSize)
	scaleY := float64(imgHeight) / float64(inputSize)

	var (
		rects    []image.Rectangle
		scores   []float32
		classIDs []int
		boxes    [][4]float64
	)

	for c := 0; c < cols; c++ {
		classID := -1
		var best float32
		for k := 0; k < rows-4; k++ {
			if score := data[(4+k)*cols+c]; score > best {
				best = score
				classID = k
			}
		}
		if classID < 0 || best < confThreshold {
			continue
		}

		cx := float64(data[c]) * scaleX
		cy := float64(data[cols+c]) * scaleY
		w := float64(data[2*cols+c]) * scaleX
		h := float64(data[3*cols+c]) * scaleY

		rects = append(rects, image.Rect(int(cx-w/2), int(cy-h/2), int(cx+w/2), int(cy+h/2)))
		scores = append(scores, best)
		classIDs = append(classIDs, classID)
		boxes = append(boxes, [4]float64{cx, cy, w, h})
	}

	if len(rects) == 0 {
		return nil, nil
	}

	keep := gocv.NMSBoxes(rects, scores, confThreshold, iouThreshold)

	detections := make([]entity.RawDetection, 0, len(keep))
	for _, i := range keep {
		detections = append(detections, entity.RawDetection{
			ClassID:    classIDs[i],
			Confidence: float64(scores[i]),
			CenterX:    boxes[i][0],
			CenterY:    boxes[i][1],
			Width:      boxes[i][2],
			Height:     boxes[i][3],
		})
	}
	return detections, nil
}
