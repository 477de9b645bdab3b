// Package output provides pluggable destinations for the pipeline's three
// artifact streams: cleaned prices, the cleaning audit log and predicted
// prices. Rows travel as JSON messages keyed by topic so every sink shares
// one write path.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Column order on disk is part of the data contract; never derive it from
// map iteration.
var topicHeaders = map[string][]string{
	models.TopicCleanedPrices:   {"date", "category", "item_name", "specification", "price"},
	models.TopicCleaningLog:     {"field", "original", "corrected"},
	models.TopicPredictedPrices: {"item_name", "category", "specification", "date", "week_num", "predicted_price"},
}

// Headers returns the fixed column order for a topic.
func Headers(topic string) ([]string, error) {
	headers, ok := topicHeaders[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
	return headers, nil
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	_ = os.Stdout.Sync()
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// CSVOutput writes one <topic>.csv per topic under basePath/folder with the
// topic's fixed column order.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
	writers  map[string]*csv.Writer
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
		writers:  make(map[string]*csv.Writer),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	headers, err := Headers(topic)
	if err != nil {
		return err
	}

	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	writer, ok := c.writers[topic]
	if !ok {
		fullPath := filepath.Join(c.basePath, c.folder)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(fullPath, topic+".csv"))
		if err != nil {
			return err
		}
		writer = csv.NewWriter(file)
		c.files[topic] = file
		c.writers[topic] = writer

		if err := writer.Write(headers); err != nil {
			return err
		}
	}

	row := make([]string, len(headers))
	for i, header := range headers {
		row[i] = formatValue(header, event[header])
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (c *CSVOutput) Close() error {
	for topic, writer := range c.writers {
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		if err := c.files[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders a JSON-decoded cell for CSV. Prices keep two decimals;
// other whole numbers drop the fraction JSON decoding gave them.
func formatValue(key string, value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if key == "price" || key == "predicted_price" {
			return strconv.FormatFloat(v, 'f', 2, 64)
		}
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// JSONOutput appends newline-delimited JSON to one <topic>.json per topic.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		fullPath := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(fullPath, topic+".json"))
		if err != nil {
			return err
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// ForConfig picks the destination the configuration asks for.
func ForConfig(cfg *models.Config) (Destination, error) {
	if cfg.KafkaEnabled {
		return NewKafkaOutput(cfg.KafkaBrokerList)
	}
	if cfg.OutputPath != "" {
		switch cfg.OutputFormat {
		case "parquet":
			return NewParquetOutput(cfg)
		case "json":
			return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
		case "", "csv":
			return NewCSVOutput(cfg.OutputPath, cfg.OutputFolder), nil
		default:
			return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
		}
	}
	return &ConsoleOutput{}, nil
}
