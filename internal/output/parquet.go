package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/cloudwriter"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// Parquet row shapes, one per topic. Columns mirror the CSV contract.
type cleanedPriceRow struct {
	Date          string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"date"`
	Category      string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"category"`
	ItemName      string  `parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"item_name"`
	Specification string  `parquet:"name=specification, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"specification"`
	Price         float64 `parquet:"name=price, type=DOUBLE" json:"price"`
}

type cleaningLogRow struct {
	Field     string `parquet:"name=field, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"field"`
	Original  string `parquet:"name=original, type=BYTE_ARRAY, convertedtype=UTF8" json:"original"`
	Corrected string `parquet:"name=corrected, type=BYTE_ARRAY, convertedtype=UTF8" json:"corrected"`
}

type predictedPriceRow struct {
	ItemName       string  `parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"item_name"`
	Category       string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"category"`
	Specification  string  `parquet:"name=specification, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"specification"`
	Date           string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" json:"date"`
	WeekNum        int32   `parquet:"name=week_num, type=INT32" json:"week_num"`
	PredictedPrice float64 `parquet:"name=predicted_price, type=DOUBLE" json:"predicted_price"`
}

// ParquetOutput writes one <topic>.parquet per topic, locally or straight to
// an object store depending on OutputDestination.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
	mu                 sync.Mutex
}

// CloudParquetFile adapts a CloudWriter to the source.ParquetFile interface.
// Uploads are write-only; Read and seek-from-end are not supported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return nil, fmt.Errorf("open not supported for cloud storage")
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

func NewParquetOutput(cfg *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if cfg.OutputDestination != "" && cfg.OutputDestination != "local" {
		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
			p.cloudBucketName = cfg.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
	}

	return p, nil
}

// rowFor returns a fresh typed row for a topic; the same value doubles as the
// parquet schema object.
func rowFor(topic string) (interface{}, error) {
	switch topic {
	case models.TopicCleanedPrices:
		return new(cleanedPriceRow), nil
	case models.TopicCleaningLog:
		return new(cleaningLogRow), nil
	case models.TopicPredictedPrices:
		return new(predictedPriceRow), nil
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	row, err := rowFor(topic)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, row); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[topic]
	if !ok {
		pw, err = p.createWriter(topic, row)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
		p.writers[topic] = pw
	}

	return pw.Write(row)
}

func (p *ParquetOutput) createWriter(topic string, schema interface{}) (*writer.ParquetWriter, error) {
	objectPath := filepath.Join(p.folder, topic+".parquet")

	var fw source.ParquetFile
	if p.cloudWriterFactory != nil {
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer: %w", err)
		}
		fw = NewCloudParquetFile(cw)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, topic+".parquet"))
		if err != nil {
			return nil, err
		}
	}

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		return nil, err
	}
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			return fmt.Errorf("failed to finalize parquet file for %s: %w", topic, err)
		}
		if err := p.files[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}
