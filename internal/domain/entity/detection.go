package entity

// Статусные маркеры ответов API.
const (
	StatusSuccess = "success"
	StatusHealthy = "healthy"
)

// Bitmap — декодированное изображение с фиксированным порядком каналов RGB.
type Bitmap struct {
	Width  int     // ширина в пикселях
	Height int     // высота в пикселях
	Pix    []uint8 // пиксели построчно, 3 байта (R, G, B) на пиксель
}

// NewBitmap создаёт пустой bitmap заданного размера.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At возвращает компоненты пикселя (x, y).
func (bm *Bitmap) At(x, y int) (r, g, b uint8) {
	i := (y*bm.Width + x) * 3
	return bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2]
}

// RawDetection — один бокс, выданный движком детекции.
type RawDetection struct {
	ClassID    int     // индекс класса в таблице движка
	Confidence float64 // уверенность в диапазоне [0, 1]
	CenterX    float64 // X центра бокса в пикселях исходного изображения
	CenterY    float64 // Y центра бокса в пикселях исходного изображения
	Width      float64 // ширина бокса в пикселях
	Height     float64 // высота бокса в пикселях
}

// Prediction — нормализованная запись детекции для клиента.
type Prediction struct {
	ClassName  string     `json:"class_name"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"` // [center_x, center_y, width, height]
}

// DetectionResponse хранит итог обработки одного запроса /detect.
type DetectionResponse struct {
	Predictions []Prediction `json:"predictions"`
	Status      string       `json:"status"`
}

// HealthStatus — ответ /health о состоянии сервиса и модели.
type HealthStatus struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelClasses int    `json:"model_classes"`
}
