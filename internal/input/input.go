// Package input loads process descriptors from YAML or CSV files.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads, normalizes and validates the jobs in path.
func LoadFile(path string) (requests.ScheduleRequests, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

func Load(r io.Reader, format Format) (requests.ScheduleRequests, error) {
	var (
		req requests.ScheduleRequests
		err error
	)
	switch format {
	case FormatYAML:
		req, err = decodeYAML(r)
	case FormatCSV:
		req, err = decodeCSV(r)
	default:
		return req, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return requests.ScheduleRequests{}, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return requests.ScheduleRequests{}, err
	}
	return req, nil
}

func decodeYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, fmt.Errorf("parse yaml: %w", err)
	}
	return req, nil
}

// decodeCSV reads "name,arrival,burst[,priority]" rows. Blank lines and lines
// starting with '#' are skipped, as is a header row starting with "name".
func decodeCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("parse csv: %w", err)
	}

	var req requests.ScheduleRequests
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		job, err := parseRow(row)
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("csv line %d: %w", i+1, err)
		}
		job.ProcessId = len(req.Jobs) + 1
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}

func parseRow(row []string) (requests.Job, error) {
	if len(row) < 3 || len(row) > 4 {
		return requests.Job{}, fmt.Errorf("%w: expected name, arrival, burst, [priority]", requests.ErrInvalidJob)
	}
	fields := make([]string, len(row))
	for i := range row {
		fields[i] = strings.Trim(strings.TrimSpace(row[i]), `"`)
	}

	numbers := make([]int, 0, 3)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return requests.Job{}, fmt.Errorf("%w: %q is not a number", requests.ErrInvalidJob, field)
		}
		numbers = append(numbers, n)
	}

	job := requests.Job{Name: fields[0], ArrivalTime: numbers[0], BurstTime: numbers[1]}
	if len(numbers) == 3 {
		job.Priority = requests.IntPtr(numbers[2])
	}
	return job, nil
}
