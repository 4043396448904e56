package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-liquid"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData decodes render assigns from a file or a JSON string. Files
// ending in .yaml or .yml are decoded as YAML.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	result := make(map[string]any)

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(filePath)) {
		case DataExtYAML, DataExtYML:
			err = yaml.Unmarshal(data, &result)
		default:
			err = json.Unmarshal(data, &result)
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if jsonStr == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// newLogger writes human readable debug logs to w when verbose is set
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}

// newTemplate creates an empty template, applying the YAML configuration
// at configPath when one is given.
func newTemplate(configPath string, logger *zap.Logger) (*liquid.Template, error) {
	if configPath == "" {
		return liquid.New(liquid.WithLogger(logger))
	}

	cfg, err := liquid.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	return liquid.New(opts...)
}
