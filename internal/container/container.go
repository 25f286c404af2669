package container

import (
	app "detect-api/internal/application"
	"detect-api/internal/domain/port"
)

type Container struct {
	DetectionService *app.DetectionService
}

func New(engine port.Engine) *Container {
	return &Container{
		DetectionService: app.NewDetectionService(engine),
	}
}
