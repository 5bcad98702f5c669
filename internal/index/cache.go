package index

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/pkg/errors"
)

// Columns is the fixed column order of the cache table
var Columns = []string{"index", "image", "draw_order", "north", "south", "east", "west", "rotation"}

// Persist writes the records as cache table to the given path
func Persist(path string, records []tile.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Unable to create cache file %s", path)
	}

	err = writeTable(file, records)
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "Unable to write cache file %s", path)
	}

	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "Unable to close cache file %s", path)
	}

	sigolo.Debugf("Persisted %d records to %s", len(records), path)
	return nil
}

func writeTable(w io.Writer, records []tile.Record) error {
	writer := csv.NewWriter(w)

	err := writer.Write(Columns)
	if err != nil {
		return err
	}

	for _, r := range records {
		err = writer.Write([]string{
			r.ID,
			r.Image,
			strconv.Itoa(r.DrawOrder),
			formatFloat(r.North),
			formatFloat(r.South),
			formatFloat(r.East),
			formatFloat(r.West),
			formatFloat(r.Rotation),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadCache reads the records of the cache table at the given path. The header row is
// skipped, columns are read by position.
func LoadCache(path string) ([]tile.Record, error) {
	_, records, err := readCache(path)
	return records, err
}

func readCache(path string) ([]string, []tile.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Unable to open cache file %s", path)
	}
	defer file.Close()

	header, records, err := readTable(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Unable to read cache file %s", path)
	}

	sigolo.Debugf("Loaded %d records from %s", len(records), path)
	return header, records, nil
}

func readTable(r io.Reader) ([]string, []tile.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("table is empty, header row missing")
	}
	if err != nil {
		return nil, nil, err
	}

	var records []tile.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", line)
		}
		records = append(records, record)
	}

	return header, records, nil
}

func parseRow(row []string) (tile.Record, error) {
	var err error
	record := tile.Record{
		ID:    row[0],
		Image: row[1],
	}

	record.DrawOrder, err = strconv.Atoi(row[2])
	if err != nil {
		return record, errors.Wrapf(err, "column %s", Columns[2])
	}

	targets := []*float64{&record.North, &record.South, &record.East, &record.West, &record.Rotation}
	for i, target := range targets {
		*target, err = strconv.ParseFloat(row[3+i], 64)
		if err != nil {
			return record, errors.Wrapf(err, "column %s", Columns[3+i])
		}
	}

	return record, nil
}

// formatFloat uses the shortest representation that parses back to the same value
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
