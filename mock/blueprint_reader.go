package mock_generator

import (
	"encoding/json"
	"os"

	"generate-video-api/application/ports/outbound"
)

type BlueprintReader interface {
	Read(fileName string) (*MockBlueprint, error)
}

type fileBlueprintReader struct {
	logger outbound.LoggerPort
}

func NewFileBlueprintReader(logger outbound.LoggerPort) BlueprintReader {
	return &fileBlueprintReader{
		logger: logger,
	}
}

func (f *fileBlueprintReader) Read(fileName string) (*MockBlueprint, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var blueprint MockBlueprint
	if err := json.NewDecoder(file).Decode(&blueprint); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, err
	}

	return &blueprint, nil
}
