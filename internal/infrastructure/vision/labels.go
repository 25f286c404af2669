package vision

import (
	"fmt"
	"os"
	"strings"
)

// LoadClasses читает таблицу имён классов: одно имя на строку,
// индекс класса равен номеру строки. Пустые строки пропускаются.
func LoadClasses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("class table: %w", err)
	}

	var classes []string
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		classes = append(classes, name)
	}

	if len(classes) == 0 {
		return nil, fmt.Errorf("class table %s is empty", path)
	}
	return classes, nil
}
