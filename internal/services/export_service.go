// internal/services/export_service.go
package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/config"
	"github.com/scmdash/scm-backend/internal/models"
)

var orderCSVHeader = []string{"ID", "Customer", "Status", "Total", "Date"}

const ExportFilename = "orders.csv"

// WriteOrdersCSV writes one row per order under the header
// ID,Customer,Status,Total,Date. Fields are quoted as needed so the output
// parses back into the same values. In legacy mode the fields are joined
// with bare commas, which corrupts rows whose customer name contains a comma.
func WriteOrdersCSV(w io.Writer, orders []models.Order, legacy bool) error {
	if legacy {
		return writeLegacyCSV(w, orders)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(orderCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range orders {
		if err := cw.Write(orderRow(o)); err != nil {
			return fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeLegacyCSV(w io.Writer, orders []models.Order) error {
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, strings.Join(orderRow(o), ","))
	}
	_, err := fmt.Fprintf(w, "%s\n%s", strings.Join(orderCSVHeader, ","), strings.Join(lines, "\n"))
	return err
}

func orderRow(o models.Order) []string {
	return []string{
		o.ID,
		o.Customer.Name,
		string(o.Status),
		strconv.FormatFloat(o.Total, 'f', -1, 64),
		o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ExportSink archives a finished export and returns where it was stored.
type ExportSink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

type LocalSink struct {
	Dir string
}

func (l LocalSink) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(l.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

type S3Sink struct {
	client *s3.S3
	bucket string
	region string
}

func NewS3Sink(cfg config.AWSConfig) (*S3Sink, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Sink{client: s3.New(sess), bucket: cfg.S3Bucket, region: cfg.Region}, nil
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := "exports/" + name
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("text/csv"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

type ExportResult struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
	Location string `json:"location,omitempty"`
	Data     []byte `json:"-"`
}

// ExportService renders order exports and optionally archives them.
type ExportService struct {
	sink   ExportSink
	legacy bool
	now    func() time.Time
}

// NewExportService archives to S3 when a bucket and credentials are
// configured, to a local directory when one is set, and nowhere otherwise.
func NewExportService(cfg *config.Config) (*ExportService, error) {
	svc := &ExportService{legacy: cfg.Export.LegacyCSV, now: time.Now}

	switch {
	case cfg.AWS.S3Bucket != "" && cfg.AWS.AccessKeyID != "":
		sink, err := NewS3Sink(cfg.AWS)
		if err != nil {
			return nil, err
		}
		svc.sink = sink
	case cfg.Export.Directory != "":
		svc.sink = LocalSink{Dir: cfg.Export.Directory}
	}

	return svc, nil
}

func NewExportServiceWithSink(sink ExportSink, legacy bool) *ExportService {
	return &ExportService{sink: sink, legacy: legacy, now: time.Now}
}

func (s *ExportService) Export(ctx context.Context, orders []models.Order) (*ExportResult, error) {
	var buf bytes.Buffer
	if err := WriteOrdersCSV(&buf, orders, s.legacy); err != nil {
		return nil, err
	}

	result := &ExportResult{
		Filename: ExportFilename,
		Rows:     len(orders),
		Data:     buf.Bytes(),
	}

	if s.sink != nil {
		name := fmt.Sprintf("orders-%s.csv", s.now().UTC().Format("20060102-150405"))
		location, err := s.sink.Put(ctx, name, result.Data)
		if err != nil {
			return nil, err
		}
		result.Location = location
		logrus.WithFields(logrus.Fields{
			"rows":     result.Rows,
			"location": location,
		}).Info("Order export archived")
	}

	return result, nil
}
